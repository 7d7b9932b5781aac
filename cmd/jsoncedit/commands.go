package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsoncedit").
		WithSynopsis("jsoncedit [opts] command [opts]").
		WithDescription("jsoncedit edits JSONC documents without disturbing comments or formatting.").
		WithOpts(opts...).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			UnsetCommand(cfg),
			MergeCommand(cfg),
			ReplaceCommand(cfg),
			RenameCommand(cfg),
			MoveCommand(cfg),
			CommentCommand(cfg),
			SortCommand(cfg),
			FmtCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			FromYAMLCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [file]").
		WithDescription("print the value at a path as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-c comment] <path> <value> [file]").
		WithDescription("set the value at a path, creating containers as needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func UnsetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnsetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Unset, "unset").
		WithAliases("rm", "u").
		WithSynopsis("unset <path> [file]").
		WithDescription("remove the property or element at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return unset(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChangeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "merge").
		WithAliases("m").
		WithSynopsis("merge [opts] <change> [file]").
		WithDescription("merge a change document into the file; null values delete").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return change(cfg, cc, args, false)
		})
}

func ReplaceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChangeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "replace").
		WithSynopsis("replace [opts] <change> [file]").
		WithDescription("replace the document's content; keys absent from the change are removed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return change(cfg, cc, args, true)
		})
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithSynopsis("rename <path> <newkey> [file]").
		WithDescription("rename a property, keeping its value and comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func MoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MoveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Move, "move").
		WithAliases("mv").
		WithSynopsis("move <from> <to> [file]").
		WithDescription("move a value from one path to another").
		WithRun(func(cc *cli.Context, args []string) error {
			return move(cfg, cc, args)
		})
}

func CommentCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CommentConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Comment, "comment").
		WithAliases("c").
		WithSynopsis("comment [-t] [-r | -m text] <path> [file]").
		WithDescription("get, set or remove the comment on a property").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return comment(cfg, cc, args)
		})
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithSynopsis("sort [opts] [file]").
		WithDescription("sort object keys, moving comments with their properties").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortCmd(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [opts] [file]").
		WithDescription("reformat a JSONC document, keeping comments in place").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [opts] <patch> [file]").
		WithDescription("apply an RFC 6902 JSON Patch, preserving comments and formatting").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <before> <after>").
		WithDescription("print an RFC 6902 patch turning one document into another").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FromYAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FromYAMLConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.FromYAML, "from-yaml").
		WithSynopsis("from-yaml [file]").
		WithDescription("convert a YAML document to JSONC, carrying comments over").
		WithRun(func(cc *cli.Context, args []string) error {
			return fromYAML(cfg, cc, args)
		})
}
