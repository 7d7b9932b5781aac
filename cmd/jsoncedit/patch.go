package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: a patch argument is required", cli.ErrUsage)
	}
	raw, err := changeArg(args[0], cfg.String, cfg.File)
	if err != nil {
		return err
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var out string
	if cfg.At != "" {
		base, err := jsoncedit.ParsePath(cfg.At)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		out, err = jsoncedit.ApplyJSONPatchAtPathBytes(doc, raw, base)
		if err != nil {
			return err
		}
	} else {
		out, err = jsoncedit.ApplyJSONPatchBytes(doc, raw)
		if err != nil {
			return err
		}
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}
