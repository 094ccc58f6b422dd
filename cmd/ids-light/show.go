package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputFiles(args)
	for i, file := range files {
		doc, err := parseInput(cc, file)
		if err != nil {
			return err
		}
		var out []byte
		if cfg.JSON {
			out, err = json.MarshalIndent(doc, "", "  ")
		} else {
			out, err = yaml.Marshal(doc)
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
