package parse

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ids-light/go-idslight/debug"
	"github.com/ids-light/go-idslight/document"
)

// Parse turns IDS-Light text into a document.
//
// Input that is valid JSON is decoded strictly (unknown fields are
// rejected with line-accurate decode errors). Anything else goes through
// the tolerant line scanner. A trimmed-empty input yields
// document.Default() without error.
func Parse(d []byte, opts ...ParseOption) (*document.Document, error) {
	pOpts := &parseOpts{normalize: true}
	for _, f := range opts {
		f(pOpts)
	}
	src := bytes.TrimSpace(d)
	if len(src) == 0 {
		return document.Default(), nil
	}

	var (
		doc *document.Document
		err error
	)
	switch pOpts.format {
	case formatJSON:
		doc, err = parseJSON(src)
	case formatYAML:
		doc, err = parseTolerant(src)
	default:
		if json.Valid(src) {
			doc, err = parseJSON(src)
		} else {
			doc, err = parseTolerant(src)
		}
	}
	if err != nil {
		return nil, err
	}
	if pOpts.normalize {
		document.Normalize(doc)
	}
	if debug.Parse() {
		debug.Logf("parse: document %s\n", debug.JSON(doc))
	}
	return doc, nil
}

// ParseString is Parse over a string input.
func ParseString(s string, opts ...ParseOption) (*document.Document, error) {
	return Parse([]byte(s), opts...)
}

func parseJSON(src []byte) (*document.Document, error) {
	doc := &document.Document{}
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(doc); err != nil {
		if debug.Parse() {
			debug.Logf("parse: strict JSON rejected: %v\n", err)
		}
		return nil, &ParseError{Cause: err}
	}
	return doc, nil
}

func parseTolerant(src []byte) (*document.Document, error) {
	s := newScanner()
	for i, raw := range strings.Split(string(src), "\n") {
		s.line(i+1, raw)
	}
	if len(s.unparsed) > 0 {
		if debug.Parse() {
			for _, ln := range s.unparsed {
				debug.Logf("parse: unparsed line %d: %q\n", ln.Number, ln.Raw)
			}
		}
		return nil, &ParseError{Lines: s.unparsed}
	}
	return s.doc, nil
}
