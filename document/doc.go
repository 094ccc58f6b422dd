// Package document defines the IDS-Light document model.
//
// # Overview
//
// An IDS-Light document is a small, closed tree: a root object with a
// single "ids" key carrying metadata, an IFC schema version, and an
// ordered list of rules. Each rule pairs applicability facets (which
// elements it targets) with requirement facets (what those elements must
// satisfy).
//
// Documents are plain values. They are constructed once per conversion
// pass (by the parse package or by hand) and never mutated afterwards;
// there is no shared state between documents.
//
// The package also carries the shared lookup tables used by conversion:
// simplified datatype to IFC defined type, IFC type to XML Schema base
// type, presence to cardinality, and the quantity-name measure guesses.
//
// # Related Packages
//
//   - github.com/ids-light/go-idslight/parse - Parses text into documents
//   - github.com/ids-light/go-idslight/schema - Validates documents
//   - github.com/ids-light/go-idslight/idsxml - Encodes documents as IDS 1.0 XML
package document
