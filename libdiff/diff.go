// Package libdiff computes line diffs between generated XML outputs.
//
// # Usage
//
//	diffs := libdiff.Lines(xmlA, xmlB)
//	if !libdiff.Equal(diffs) {
//	    libdiff.Render(w, diffs, true)
//	}
package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-based diff of two texts.
func Lines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	c1, c2, arr := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(c1, c2, false)
	return dmp.DiffCharsToLines(diffs, arr)
}

// Equal reports whether a diff contains no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Render writes a unified-style rendering: deletions prefixed "-",
// insertions "+", context unprefixed. With colorize set, deletions are
// red and insertions green.
func Render(w io.Writer, diffs []diffpatch.Diff, colorize bool) error {
	for _, d := range diffs {
		prefix := "  "
		paint := func(s string) string { return s }
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			if colorize {
				paint = func(s string) string { return color.RedString("%s", s) }
			}
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colorize {
				paint = func(s string) string { return color.GreenString("%s", s) }
			}
		}
		for _, line := range splitLines(d.Text) {
			if _, err := io.WriteString(w, paint(prefix+line)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
