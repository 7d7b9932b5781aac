package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
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
	v, ok := jsoncedit.Get(doc, path)
	if !ok {
		return cli.ExitCodeErr(1)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}
