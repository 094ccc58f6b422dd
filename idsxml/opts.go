package idsxml

type encState struct {
	pretty bool
	indent int
}

type EncodeOption func(*encState)

// Pretty controls pretty-printing. On by default.
func Pretty(v bool) EncodeOption {
	return func(es *encState) { es.pretty = v }
}

// Compact is shorthand for Pretty(false).
func Compact() EncodeOption {
	return Pretty(false)
}

// Indent sets the pretty-print indentation width. Default 2.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}
