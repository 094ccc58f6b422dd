// Package idsxml encodes IDS-Light documents as buildingSMART IDS 1.0 XML.
//
// # Usage
//
//	// Pretty-printed (2-space indentation) by default
//	out, err := idsxml.String(doc)
//
//	// Compact, to a writer
//	err := idsxml.Encode(doc, w, idsxml.Compact())
//
// Output is byte-for-byte deterministic for a given document and option
// set. Encoding is pure rendering: it assumes the document already passed
// schema.Validate and does not re-check. The only hard failure is a
// missing document root; every other absent field is handled by omission.
//
// # Related Packages
//
//   - github.com/ids-light/go-idslight/document - The document model and
//     the datatype/cardinality tables this package renders from
//   - github.com/ids-light/go-idslight/schema - Run before encoding
package idsxml
