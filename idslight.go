// Package idslight converts IDS-Light text into buildingSMART IDS 1.0 XML.
//
// IDS-Light is a simplified YAML/JSON dialect for authoring building-data
// requirements. The pipeline has three pure stages, used in strict
// sequence:
//
//	doc, err := idslight.Parse(text)       // text -> document, or ParseError
//	res := idslight.Validate(doc)          // document -> result, never panics
//	xml, err := idslight.Convert(doc)      // document -> IDS 1.0 XML
//
// Parse failures stop the pipeline; validation failures stop conversion;
// Convert assumes a valid document and does not re-check. Each stage is
// side-effect-free and referentially transparent, so the pipeline can be
// re-invoked from any goroutine without locking.
//
// The stage implementations live in the parse, schema, and idsxml
// subpackages; this package is the high-level surface.
package idslight

import (
	"github.com/ids-light/go-idslight/document"
	"github.com/ids-light/go-idslight/idsxml"
	"github.com/ids-light/go-idslight/parse"
	"github.com/ids-light/go-idslight/schema"
)

// Parse parses IDS-Light text (strict JSON or the tolerant YAML subset)
// into a normalized document.
func Parse(text string) (*document.Document, error) {
	return parse.ParseString(text)
}

// Validate checks a document against the IDS-Light structural contract.
func Validate(doc *document.Document) *schema.Result {
	return schema.Validate(doc)
}

// Convert renders a document as IDS 1.0 XML, pretty-printed by default.
func Convert(doc *document.Document, opts ...idsxml.EncodeOption) (string, error) {
	return idsxml.String(doc, opts...)
}
