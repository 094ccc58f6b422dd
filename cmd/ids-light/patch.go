package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/document"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch takes a patch file and input files", cli.ErrUsage)
	}
	p, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	files := inputFiles(args[1:])
	for i, file := range files {
		doc, err := parseInput(cc, file)
		if err != nil {
			return err
		}
		patched, err := document.MergePatch(doc, p)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		out, err := json.MarshalIndent(patched, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
