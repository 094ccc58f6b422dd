package schema

import (
	"fmt"
	"strings"
)

// Validation is a single diagnostic, scoped to the document path that
// produced it. Paths are slash-separated with zero-based indices, e.g.
// "/ids/rules/1/properties/0".
type Validation struct {
	Path    string
	Message string
}

func (v Validation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Result aggregates the diagnostics of one Validate call.
type Result struct {
	Valid  bool
	Errors []Validation
}

// Strings renders every diagnostic, one string each.
func (r *Result) Strings() []string {
	out := make([]string, len(r.Errors))
	for i, v := range r.Errors {
		out[i] = v.String()
	}
	return out
}

func (r *Result) String() string {
	if r.Valid {
		return "ok"
	}
	return strings.Join(r.Strings(), "\n")
}

func (r *Result) add(path, format string, args ...any) {
	r.Errors = append(r.Errors, Validation{Path: path, Message: fmt.Sprintf(format, args...)})
}
