package main

import (
	"encoding/json"
	"fmt"

	yaml "github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path, err := jsoncedit.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	value, err := decodeValue(args[1], cfg.YAML)
	if err != nil {
		return err
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var out string
	if cfg.Comment != "" {
		out, err = jsoncedit.SetWithComment(doc, path, value, cfg.Comment)
	} else {
		out, err = jsoncedit.Set(doc, path, value)
	}
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}

func unset(cfg *UnsetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unset.Parse(cc, args)
	if err != nil {
		cfg.Unset.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: unset requires a path argument", cli.ErrUsage)
	}
	path, err := jsoncedit.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	doc, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	out, err := jsoncedit.Remove(doc, path)
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, file, doc, out)
}

// decodeValue decodes a command line value argument. JSON first, then
// YAML if asked for, and a bare word falls back to a string literal.
func decodeValue(arg string, asYAML bool) (any, error) {
	var v any
	if asYAML {
		if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
			return nil, fmt.Errorf("invalid YAML value %q: %w", arg, err)
		}
		return v, nil
	}
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg, nil
	}
	return v, nil
}
