package idsxml

import "strings"

// Attr is one XML attribute. Attribute order is emission order.
type Attr struct {
	Name, Value string
}

// Element is a node of the output tree. An element carries either Text
// or Children, never both.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

func newElement(name string) *Element {
	return &Element{Name: name}
}

// ele appends and returns a new child element.
func (e *Element) ele(name string) *Element {
	child := newElement(name)
	e.Children = append(e.Children, child)
	return child
}

// att appends an attribute.
func (e *Element) att(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// txt sets the element's text content.
func (e *Element) txt(text string) *Element {
	e.Text = text
	return e
}

// simple appends <tag><ids:simpleValue>text</ids:simpleValue></tag>.
func (e *Element) simple(tag, text string) {
	e.ele(tag).ele("ids:simpleValue").txt(text)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
