package idsxml

import (
	"errors"
	"io"
	"strings"

	"github.com/ids-light/go-idslight/debug"
	"github.com/ids-light/go-idslight/document"
)

// ErrNoRoot is returned when encoding is attempted without a document.
var ErrNoRoot = errors.New("missing root ids")

const header = `<?xml version="1.0" encoding="UTF-8"?>`

// Encode writes a document as IDS 1.0 XML. Pretty output puts one
// element per line at 2-space indentation with no trailing newline;
// compact output is a single line.
func Encode(doc *document.Document, w io.Writer, opts ...EncodeOption) error {
	es := &encState{pretty: true, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if doc == nil {
		return ErrNoRoot
	}
	root := build(doc)
	if debug.Encode() {
		debug.Logf("encode: %d specification(s)\n", len(doc.IDS.Rules))
	}
	sb := &strings.Builder{}
	sb.WriteString(header)
	if es.pretty {
		lines := []string{}
		renderPretty(root, 0, es.indent, &lines)
		sb.WriteString("\n")
		sb.WriteString(strings.Join(lines, "\n"))
	} else {
		renderCompact(root, sb)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String encodes to a string.
func String(doc *document.Document, opts ...EncodeOption) (string, error) {
	sb := &strings.Builder{}
	if err := Encode(doc, sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func openTag(e *Element) string {
	sb := &strings.Builder{}
	sb.WriteString("<")
	sb.WriteString(e.Name)
	for _, a := range e.Attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escape(a.Value))
		sb.WriteString(`"`)
	}
	return sb.String()
}

func renderPretty(e *Element, depth, indent int, lines *[]string) {
	pad := strings.Repeat(" ", depth*indent)
	open := openTag(e)
	switch {
	case len(e.Children) == 0 && e.Text == "":
		*lines = append(*lines, pad+open+"/>")
	case len(e.Children) == 0:
		*lines = append(*lines, pad+open+">"+escape(e.Text)+"</"+e.Name+">")
	default:
		*lines = append(*lines, pad+open+">")
		for _, child := range e.Children {
			renderPretty(child, depth+1, indent, lines)
		}
		*lines = append(*lines, pad+"</"+e.Name+">")
	}
}

func renderCompact(e *Element, sb *strings.Builder) {
	open := openTag(e)
	switch {
	case len(e.Children) == 0 && e.Text == "":
		sb.WriteString(open + "/>")
	case len(e.Children) == 0:
		sb.WriteString(open + ">" + escape(e.Text) + "</" + e.Name + ">")
	default:
		sb.WriteString(open + ">")
		for _, child := range e.Children {
			renderCompact(child, sb)
		}
		sb.WriteString("</" + e.Name + ">")
	}
}
