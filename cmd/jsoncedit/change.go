package main

import (
	"fmt"

	yaml "github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func change(cfg *ChangeConfig, cc *cli.Context, args []string, replace bool) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: a change document argument is required", cli.ErrUsage)
	}
	raw, err := changeArg(args[0], cfg.String, cfg.File)
	if err != nil {
		return err
	}
	if cfg.YAML {
		j, err := yaml.YAMLToJSON(raw)
		if err != nil {
			return fmt.Errorf("invalid YAML change document: %w", err)
		}
		raw = j
	}
	ch, err := jsoncedit.ChangeFromJSON(raw)
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
	if replace {
		out, err = jsoncedit.Replace(doc, ch)
	} else {
		out, err = jsoncedit.Merge(doc, ch)
	}
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}
