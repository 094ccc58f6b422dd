package idsxml

import (
	"strings"

	"github.com/ids-light/go-idslight/document"
)

const (
	nsIDS          = "http://standards.buildingsmart.org/IDS"
	nsXS           = "http://www.w3.org/2001/XMLSchema"
	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = nsIDS + " " + nsIDS + "/1.0/ids.xsd"

	requirementsNote = "Generated from IDS-Light"
	authorDomain     = "ids-light.com"
)

func build(doc *document.Document) *Element {
	root := newElement("ids:ids").
		att("xmlns:ids", nsIDS).
		att("xmlns:xs", nsXS).
		att("xmlns:xsi", nsXSI).
		att("xsi:schemaLocation", schemaLocation)

	buildInfo(root.ele("ids:info"), &doc.IDS)

	specs := root.ele("ids:specifications")
	for _, rule := range doc.IDS.Rules {
		if rule == nil {
			continue
		}
		buildSpecification(specs, rule, doc.IDS.IFCVersion)
	}
	return root
}

func buildInfo(info *Element, spec *document.Spec) {
	if spec.Title != "" {
		info.ele("ids:title").txt(spec.Title)
	}
	if spec.Description != "" {
		info.ele("ids:description").txt(spec.Description)
	}
	if spec.Author != "" {
		info.ele("ids:author").txt(authorEmail(spec.Author))
	}
	if spec.Date != "" {
		info.ele("ids:date").txt(spec.Date)
	}
}

// authorEmail normalizes the author field to the email-shaped identity
// the downstream schema consumer assumes: whitespace stripped, lowercase,
// with a fixed domain appended when no "@" is present.
func authorEmail(author string) string {
	clean := strings.ToLower(strings.Join(strings.Fields(author), ""))
	if strings.Contains(clean, "@") {
		return clean
	}
	return clean + "@" + authorDomain
}

func buildSpecification(specs *Element, rule *document.Rule, version document.IFCVersion) {
	name := rule.Name
	if name == "" {
		name = rule.Entity
	}
	spec := specs.ele("ids:specification").
		att("name", name).
		att("ifcVersion", string(version))

	buildApplicability(spec, rule)
	buildRequirements(spec, rule)
}

// Applicability facets are filters, not requirements: they carry no
// cardinality attribute.
func buildApplicability(spec *Element, rule *document.Rule) {
	appl := spec.ele("ids:applicability").
		att("minOccurs", "1").
		att("maxOccurs", "unbounded")

	entity := appl.ele("ids:entity")
	entity.simple("ids:name", strings.ToUpper(rule.Entity))
	if rule.PredefinedType != "" {
		entity.simple("ids:predefinedType", rule.PredefinedType)
	}

	for _, p := range rule.PartOf {
		buildPartOf(appl, p, false)
	}
	for _, c := range rule.Classifications {
		cls := appl.ele("ids:classification")
		cls.simple("ids:system", c.System)
		if c.Value != "" {
			cls.simple("ids:value", c.Value)
		}
	}
	for _, m := range rule.Materials {
		mat := appl.ele("ids:material")
		if m.Value != "" {
			mat.simple("ids:value", m.Value)
		}
	}
}

func buildRequirements(spec *Element, rule *document.Rule) {
	reqs := spec.ele("ids:requirements").att("description", requirementsNote)

	for _, p := range rule.RequiredPartOf {
		buildPartOf(reqs, p, true)
	}
	for _, c := range rule.RequiredClassifications {
		cls := reqs.ele("ids:classification").att("cardinality", "required")
		if c.URI != "" {
			cls.att("uri", c.URI)
		}
		if c.Instructions != "" {
			cls.att("instructions", c.Instructions)
		}
		cls.simple("ids:system", c.System)
		if c.Value != "" {
			cls.simple("ids:value", c.Value)
		}
	}
	for _, m := range rule.RequiredMaterials {
		mat := reqs.ele("ids:material").att("cardinality", "required")
		if m.URI != "" {
			mat.att("uri", m.URI)
		}
		if m.Instructions != "" {
			mat.att("instructions", m.Instructions)
		}
		if m.Value != "" {
			mat.simple("ids:value", m.Value)
		}
	}
	for _, a := range rule.Attributes {
		node := reqs.ele("ids:attribute").att("cardinality", a.Presence.Cardinality())
		if a.Instructions != "" {
			node.att("instructions", a.Instructions)
		}
		node.simple("ids:name", a.Name)
		buildValueRestriction(node, a.Datatype, a.AllowedValues, a.Pattern)
	}
	for _, p := range rule.Properties {
		buildProperty(reqs, p, p.Datatype)
	}
	// Quantities are requirements-encoded identically to properties;
	// only the datatype fallback differs.
	for _, q := range rule.Quantities {
		dt := q.Datatype
		if dt == "" {
			_, base := document.SplitName(q.Name)
			dt = document.GuessMeasure(base)
		}
		buildProperty(reqs, q, dt)
	}
}

func buildPartOf(parent *Element, p *document.PartOf, required bool) {
	node := parent.ele("ids:partOf")
	if required {
		node.att("cardinality", "required")
	}
	if p.Relation != "" {
		node.att("relation", p.Relation)
	}
	if p.Instructions != "" {
		node.att("instructions", p.Instructions)
	}
	entity := node.ele("ids:entity")
	entity.simple("ids:name", strings.ToUpper(p.Entity))
	if p.PredefinedType != "" {
		entity.simple("ids:predefinedType", p.PredefinedType)
	}
}

func buildProperty(reqs *Element, r *document.Requirement, dt document.Datatype) {
	pset, base := document.SplitName(r.Name)
	node := reqs.ele("ids:property").
		att("dataType", document.ToIFCType(dt, base)).
		att("cardinality", r.Presence.Cardinality())
	if r.URI != "" {
		node.att("uri", r.URI)
	}
	if r.Instructions != "" {
		node.att("instructions", r.Instructions)
	}
	node.simple("ids:propertySet", pset)
	node.simple("ids:baseName", base)
	buildValueRestriction(node, dt, r.AllowedValues, r.Pattern)
}

// buildValueRestriction emits the <ids:value> block. It is present only
// when allowed values or a pattern exist; both may appear together.
func buildValueRestriction(node *Element, dt document.Datatype, allowed []any, pattern string) {
	if len(allowed) == 0 && pattern == "" {
		return
	}
	if dt == "" {
		dt = document.DatatypeString
	}
	base := document.XSDBase(document.ToIFCType(dt, ""))
	restriction := node.ele("ids:value").ele("xs:restriction").att("base", base)
	for _, v := range allowed {
		restriction.ele("xs:enumeration").att("value", document.ScalarString(v))
	}
	if pattern != "" {
		restriction.ele("xs:pattern").att("value", pattern)
	}
}
