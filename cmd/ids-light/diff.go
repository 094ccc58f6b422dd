package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/idsxml"
	"github.com/ids-light/go-idslight/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	xmls := make([]string, 2)
	for i, file := range args {
		doc, err := parseInput(cc, file)
		if err != nil {
			return err
		}
		xmls[i], err = idsxml.String(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	diffs := libdiff.Lines(xmls[0], xmls[1])
	if libdiff.Equal(diffs) {
		return nil
	}
	if err := libdiff.Render(cc.Out, diffs, cfg.colorize(cc.Out)); err != nil {
		return err
	}
	return fmt.Errorf("documents differ")
}
