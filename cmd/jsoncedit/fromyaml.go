package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

func fromYAML(cfg *FromYAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.FromYAML.Parse(cc, args)
	if err != nil {
		cfg.FromYAML.Usage(cc, err)
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
	out, err := jsoncedit.FromYAML([]byte(doc))
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}
