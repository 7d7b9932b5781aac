package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	before, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	after, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	patch, err := jsoncedit.Diff(before, after)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(patch, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}
