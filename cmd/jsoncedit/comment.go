package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kevinwang15/jsoncedit"
)

// comment prints a property's comment, sets it with -m, and removes it
// with -r. -t switches to the trailing comment.
func comment(cfg *CommentConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Comment.Parse(cc, args)
	if err != nil {
		cfg.Comment.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: comment requires a path argument", cli.ErrUsage)
	}
	if cfg.Remove && cfg.Message != "" {
		return fmt.Errorf("%w: -r and -m are mutually exclusive", cli.ErrUsage)
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

	switch {
	case cfg.Remove:
		var out string
		if cfg.Trailing {
			out, err = jsoncedit.RemoveTrailingComment(doc, path)
		} else {
			out, err = jsoncedit.RemoveComment(doc, path)
		}
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc, file, doc, out)
	case cfg.Message != "":
		var out string
		if cfg.Trailing {
			out, err = jsoncedit.SetTrailingComment(doc, path, cfg.Message)
		} else {
			out, err = jsoncedit.SetComment(doc, path, cfg.Message)
		}
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc, file, doc, out)
	default:
		var (
			text string
			ok   bool
		)
		if cfg.Trailing {
			text, ok = jsoncedit.GetTrailingComment(doc, path)
		} else {
			text, ok = jsoncedit.GetComment(doc, path)
		}
		if !ok {
			return cli.ExitCodeErr(1)
		}
		fmt.Fprintln(cc.Out, text)
		return nil
	}
}
