// Package parse parses IDS-Light text into documents.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    var pe *parse.ParseError
//	    if errors.As(err, &pe) {
//	        // pe.Lines lists every line that could not be interpreted
//	    }
//	    return err
//	}
//
// Parsing is dual-strategy: strict JSON first, then the tolerant
// line-oriented YAML subset. A trimmed-empty input parses to the default
// document (IFC4, no rules) without error; schema validation rejects it
// afterwards.
//
// The tolerant grammar is deliberately not YAML. It is a line scanner
// that only distinguishes shallow dashes (new rule) from deep dashes (new
// section item), so the sloppy indentation real authors produce still
// parses. Full-line comments and inline " #" suffixes are stripped.
//
// # Related Packages
//
//   - github.com/ids-light/go-idslight/document - The document model
//   - github.com/ids-light/go-idslight/schema - Validates parsed documents
package parse
