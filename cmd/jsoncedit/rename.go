package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		cfg.Rename.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: rename requires a path and a new key", cli.ErrUsage)
	}
	path, err := jsoncedit.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	out, err := jsoncedit.Rename(doc, path, args[1])
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}

func move(cfg *MoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Move.Parse(cc, args)
	if err != nil {
		cfg.Move.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: move requires a source and a destination path", cli.ErrUsage)
	}
	from, err := jsoncedit.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	to, err := jsoncedit.ParsePath(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	out, err := jsoncedit.Move(doc, from, to)
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}
