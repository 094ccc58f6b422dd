package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/idsxml"
	"github.com/ids-light/go-idslight/schema"
)

type MainConfig struct {
	Compact bool `cli:"name=compact desc='emit compact (single line) XML'"`
	Color   bool `cli:"name=color desc='force colored diagnostics'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts() []idsxml.EncodeOption {
	if cfg.Compact {
		return []idsxml.EncodeOption{idsxml.Compact()}
	}
	return nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// printResult writes validation diagnostics, paths cyan and messages red
// when colorized.
func printResult(w io.Writer, name string, res *schema.Result, colorize bool) {
	for _, v := range res.Errors {
		path, msg := v.Path, v.Message
		if colorize {
			path = color.CyanString("%s", path)
			msg = color.RedString("%s", msg)
		}
		if v.Path == "" {
			fmt.Fprintf(w, "%s: %s\n", name, msg)
			continue
		}
		fmt.Fprintf(w, "%s: %s: %s\n", name, path, msg)
	}
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Validate *cli.Command
}

type ShowConfig struct {
	*MainConfig
	JSON bool `cli:"name=json desc='render as JSON instead of YAML'"`

	Show *cli.Command
}

type RulesConfig struct {
	*MainConfig
	Match string `cli:"name=m desc='boolean selection expression, e.g. entity startsWith \"IfcWall\"'"`
	JSON  bool   `cli:"name=json desc='render as JSON instead of YAML'"`

	Rules *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
