package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func readDoc(cfg *MainConfig, cc *cli.Context, path string) (string, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	if cfg.MaxBytes > 0 && len(d) > cfg.MaxBytes {
		return "", fmt.Errorf("%q is %d bytes, over the %d byte limit", path, len(d), cfg.MaxBytes)
	}
	return string(d), nil
}

// writeDoc emits the result of an edit: a diff with -d, back to the
// input file with -w, and to the command output otherwise.
func writeDoc(cfg *MainConfig, cc *cli.Context, path, before, after string) error {
	if cfg.Diff {
		return writeDiff(cfg, cc.Out, before, after)
	}
	if cfg.Write && path != "-" {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(after), info.Mode().Perm())
	}
	_, err := io.WriteString(cc.Out, after)
	return err
}

func writeDiff(cfg *MainConfig, w io.Writer, before, after string) error {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, true))
	useColor := cfg.Color
	if !useColor {
		if f, ok := w.(*os.File); ok {
			useColor = isatty.IsTerminal(f.Fd())
		}
	}
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			if useColor {
				b.WriteString(color.RedString("%s", d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if useColor {
				b.WriteString(color.GreenString("%s", d.Text))
			} else {
				b.WriteString("[+" + d.Text + "+]")
			}
		default:
			b.WriteString(d.Text)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// fileArg interprets trailing args as [file], defaulting to stdin.
func fileArg(args []string, at int) (string, error) {
	switch {
	case len(args) == at:
		return "-", nil
	case len(args) == at+1:
		return args[at], nil
	default:
		return "", fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args[at+1:])
	}
}

// changeArg resolves an argument that is a document: a file path with -f,
// a literal with -s, and otherwise a file if one exists at that path.
func changeArg(arg string, isString, isFile bool) ([]byte, error) {
	if isString && isFile {
		return nil, fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	}
	if isString {
		return []byte(arg), nil
	}
	if !isFile {
		if _, err := os.Stat(arg); err != nil {
			return []byte(arg), nil
		}
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}
