package schema

import (
	"strings"

	"github.com/ids-light/go-idslight/document"
)

// enumDef is a closed value set with its display order preserved.
type enumDef struct {
	values []string
	set    map[string]bool
}

func mkEnum(values []string) *enumDef {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return &enumDef{values: values, set: set}
}

func (e *enumDef) has(v string) bool { return e.set[v] }
func (e *enumDef) String() string    { return strings.Join(e.values, ", ") }

// fieldRule is one declarative constraint on a scalar facet field.
type fieldRule struct {
	name     string
	required bool
	minLen   int
	enum     *enumDef
}

// field is a facet field flattened to its wire name and string value.
type field struct {
	name  string
	value string
}

var (
	ifcVersionEnum *enumDef
	datatypeEnum   *enumDef
	presenceEnum   *enumDef
	relationEnum   *enumDef
)

// The facet schemas. These tables are the validation contract; the
// walker in validate.go only interprets them.
var (
	requirementSchema      []fieldRule
	partOfSchema           []fieldRule
	classificationSchema   []fieldRule
	materialSchema         []fieldRule
	requiredMaterialSchema []fieldRule
)

func init() {
	var versions, datatypes, presences []string
	for _, v := range document.IFCVersions() {
		versions = append(versions, string(v))
	}
	for _, v := range document.Datatypes() {
		datatypes = append(datatypes, string(v))
	}
	for _, v := range document.Presences() {
		presences = append(presences, string(v))
	}
	ifcVersionEnum = mkEnum(versions)
	datatypeEnum = mkEnum(datatypes)
	presenceEnum = mkEnum(presences)
	relationEnum = mkEnum(document.Relations())

	requirementSchema = []fieldRule{
		{name: "name", required: true, minLen: 1},
		{name: "datatype", enum: datatypeEnum},
		{name: "presence", enum: presenceEnum},
	}
	partOfSchema = []fieldRule{
		{name: "entity", required: true, minLen: 3},
		{name: "relation", enum: relationEnum},
	}
	classificationSchema = []fieldRule{
		{name: "system", required: true},
	}
	materialSchema = []fieldRule{}
	// Required materials are the one facet whose required and
	// applicability variants differ: a required material without a
	// value is unenforceable.
	requiredMaterialSchema = []fieldRule{
		{name: "value", required: true},
	}
}

func requirementFields(r *document.Requirement) []field {
	return []field{
		{"name", r.Name},
		{"datatype", string(r.Datatype)},
		{"presence", string(r.Presence)},
	}
}

func partOfFields(p *document.PartOf) []field {
	return []field{
		{"entity", p.Entity},
		{"relation", p.Relation},
	}
}

func classificationFields(c *document.Classification) []field {
	return []field{
		{"system", c.System},
	}
}

func materialFields(m *document.Material) []field {
	return []field{
		{"value", m.Value},
	}
}
