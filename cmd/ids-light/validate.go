package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/schema"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	invalid := 0
	for _, file := range inputFiles(args) {
		doc, err := parseInput(cc, file)
		if err != nil {
			return err
		}
		res := schema.Validate(doc)
		if res.Valid {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
			continue
		}
		invalid++
		printResult(cc.Out, file, res, cfg.colorize(cc.Out))
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid document(s)", invalid)
	}
	return nil
}
