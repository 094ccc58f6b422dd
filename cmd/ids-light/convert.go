package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/idsxml"
	"github.com/ids-light/go-idslight/schema"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputFiles(args)
	for i, file := range files {
		doc, err := parseInput(cc, file)
		if err != nil {
			return err
		}
		if res := schema.Validate(doc); !res.Valid {
			printResult(cc.Out, file, res, cfg.colorize(cc.Out))
			return fmt.Errorf("%s: %d validation error(s)", file, len(res.Errors))
		}
		if err := idsxml.Encode(doc, cc.Out, cfg.encOpts()...); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Fprintln(cc.Out)
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
