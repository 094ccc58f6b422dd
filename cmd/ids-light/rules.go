package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/query"
)

func rules(cfg *RulesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rules.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputFiles(args)
	for i, file := range files {
		doc, err := parseInput(cc, file)
		if err != nil {
			return err
		}
		selected := doc.IDS.Rules
		if cfg.Match != "" {
			selected, err = query.Select(doc, cfg.Match)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		var out []byte
		if cfg.JSON {
			out, err = json.MarshalIndent(selected, "", "  ")
		} else {
			out, err = yaml.Marshal(selected)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
		if cfg.JSON {
			fmt.Fprintln(cc.Out)
		}
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}
