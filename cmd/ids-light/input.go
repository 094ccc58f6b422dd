package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/ids-light/go-idslight/document"
	"github.com/ids-light/go-idslight/parse"
)

// readInput reads a named file, or stdin for "-".
func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

// inputFiles defaults to stdin when no files are given.
func inputFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func parseInput(cc *cli.Context, file string) (*document.Document, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return doc, nil
}
