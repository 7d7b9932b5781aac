package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Write    bool `cli:"name=w aliases=write desc='rewrite the input file in place'"`
	Diff     bool `cli:"name=d aliases=diff desc='show a diff of the change instead of the result'"`
	Color    bool `cli:"name=color desc='force colored diff output'"`
	MaxBytes int  `cli:"name=max-bytes desc='reject documents larger than this (0 = no limit)'"`

	Main *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Comment string `cli:"name=c aliases=comment desc='leading comment to attach to the property'"`
	YAML    bool   `cli:"name=y aliases=yaml desc='decode the value as YAML'"`

	Set *cli.Command
}

type UnsetConfig struct {
	*MainConfig

	Unset *cli.Command
}

type ChangeConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='change arg is a literal document'"`
	File   bool `cli:"name=f desc='change arg is a file path'"`
	YAML   bool `cli:"name=y aliases=yaml desc='decode the change document as YAML'"`

	Cmd *cli.Command
}

type RenameConfig struct {
	*MainConfig

	Rename *cli.Command
}

type MoveConfig struct {
	*MainConfig

	Move *cli.Command
}

type CommentConfig struct {
	*MainConfig

	Trailing bool   `cli:"name=t aliases=trailing desc='operate on the trailing comment'"`
	Remove   bool   `cli:"name=r aliases=rm desc='remove the comment'"`
	Message  string `cli:"name=m aliases=message desc='comment text to set'"`

	Comment *cli.Command
}

type SortConfig struct {
	*MainConfig

	Shallow bool   `cli:"name=shallow desc='sort only the object at the path, not nested objects'"`
	At      string `cli:"name=at desc='sort the object at this path (default the root)'"`

	Sort *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Tabs    bool `cli:"name=tabs desc='indent with tabs'"`
	TabSize int  `cli:"name=tabsize desc='spaces per indent level (default 2)'"`

	Fmt *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool   `cli:"name=s desc='patch arg is a literal document'"`
	File   bool   `cli:"name=f desc='patch arg is a file path'"`
	At     string `cli:"name=at desc='apply the patch under this path'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FromYAMLConfig struct {
	*MainConfig

	FromYAML *cli.Command
}
