package parse

type inputFormat int

const (
	formatAuto inputFormat = iota
	formatJSON
	formatYAML
)

type parseOpts struct {
	format    inputFormat
	normalize bool
}

type ParseOption func(*parseOpts)

// ParseJSON restricts parsing to the strict JSON branch.
func ParseJSON() ParseOption {
	return func(o *parseOpts) { o.format = formatJSON }
}

// ParseYAML restricts parsing to the tolerant line scanner.
func ParseYAML() ParseOption {
	return func(o *parseOpts) { o.format = formatYAML }
}

// ParseNormalize controls the post-parse normalization pass (legacy
// classification folding). On by default.
func ParseNormalize(v bool) ParseOption {
	return func(o *parseOpts) { o.normalize = v }
}
