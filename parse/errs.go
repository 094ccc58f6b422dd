package parse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the sentinel all parse failures wrap.
var ErrParse = errors.New("parse error")

// UnparsedLine is one input line the tolerant scanner could not interpret.
type UnparsedLine struct {
	Number int
	Raw    string
}

// ParseError reports every line that could not be interpreted, not just
// the first, so callers can surface all problems at once.
type ParseError struct {
	Lines []UnparsedLine

	// Cause is set when the strict JSON branch rejected the input.
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %v", e.Cause)
	}
	parts := make([]string, len(e.Lines))
	for i, ln := range e.Lines {
		parts[i] = fmt.Sprintf("line %d: %q", ln.Number, strings.TrimSpace(ln.Raw))
	}
	return "parse error: invalid IDS-Light syntax, unparsed lines: " + strings.Join(parts, ", ")
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
