package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func sortCmd(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		cfg.Sort.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var path jsoncedit.Path
	if cfg.At != "" {
		path, err = jsoncedit.ParsePath(cfg.At)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	file, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	out, err := jsoncedit.Sort(doc, path, &jsoncedit.SortOptions{Shallow: cfg.Shallow})
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	out := jsoncedit.Format(doc, &jsoncedit.FormatOptions{
		TabSize:    cfg.TabSize,
		InsertTabs: cfg.Tabs,
	})
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}
