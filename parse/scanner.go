package parse

import (
	"strings"

	"github.com/ids-light/go-idslight/debug"
	"github.com/ids-light/go-idslight/document"
)

// Section names a deep dash may open on a rule. Facet kind follows from
// the name.
var sectionNames = map[string]bool{
	"attributes":              true,
	"properties":              true,
	"quantities":              true,
	"requiredPartOf":          true,
	"partOf":                  true,
	"classifications":         true,
	"materials":               true,
	"requiredClassifications": true,
	"requiredMaterials":       true,
}

// New rules are introduced by a dash at or below this indentation; deeper
// dashes open items inside the active section. Exact column values carry
// no other meaning, which is what makes the scanner tolerant.
const ruleIndent = 4

// scanner is the tolerant line scanner's state machine. It holds the rule
// and section currently being filled plus the most recently opened item
// inside that section; everything else is decided line-locally.
type scanner struct {
	doc     *document.Document
	inRules bool
	rule    *document.Rule
	section string

	req *document.Requirement
	rel *document.PartOf
	cls *document.Classification
	mat *document.Material

	unparsed []UnparsedLine
}

func newScanner() *scanner {
	return &scanner{doc: document.Default()}
}

func (s *scanner) line(n int, raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}
	if s.interpret(raw, trimmed) {
		return
	}
	if debug.Parse() {
		debug.Logf("scan: line %d unparsed: %q\n", n, raw)
	}
	s.unparsed = append(s.unparsed, UnparsedLine{Number: n, Raw: raw})
}

func (s *scanner) interpret(raw, trimmed string) bool {
	if !s.inRules {
		return s.rootLine(trimmed)
	}
	indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
	switch {
	case strings.HasPrefix(trimmed, "- ") && indent <= ruleIndent:
		return s.newRule(trimmed)
	case s.rule != nil && !strings.HasPrefix(trimmed, "- ") && strings.Contains(trimmed, ":"):
		return s.keyValue(trimmed)
	case s.section != "" && strings.HasPrefix(trimmed, "- ") && indent > ruleIndent:
		return s.newItem(trimmed)
	}
	return false
}

func (s *scanner) rootLine(trimmed string) bool {
	if trimmed == "ids:" {
		return true
	}
	if trimmed == "rules:" {
		if debug.Parse() {
			debug.Logf("scan: entering rules section\n")
		}
		s.inRules = true
		return true
	}
	key, ok := keyOf(trimmed)
	if !ok {
		return false
	}
	value := extractValue(trimmed)
	switch key {
	case "title":
		s.doc.IDS.Title = value
	case "description":
		s.doc.IDS.Description = value
	case "author":
		s.doc.IDS.Author = value
	case "date":
		s.doc.IDS.Date = value
	case "ifcVersion":
		s.doc.IDS.IFCVersion = document.IFCVersion(value)
	default:
		return false
	}
	return true
}

func (s *scanner) newRule(trimmed string) bool {
	s.rule = &document.Rule{}
	s.doc.IDS.Rules = append(s.doc.IDS.Rules, s.rule)
	s.section = ""
	s.clearItem()
	afterDash := strings.TrimSpace(trimmed[2:])
	if afterDash == "" {
		return true
	}
	key, ok := keyOf(afterDash)
	if !ok {
		return false
	}
	return s.setRuleField(key, extractValue(afterDash))
}

func (s *scanner) keyValue(trimmed string) bool {
	key, ok := keyOf(trimmed)
	if !ok {
		return false
	}
	if sectionNames[key] {
		if debug.Parse() {
			debug.Logf("scan: opening %s section\n", key)
		}
		s.openSection(key)
		return true
	}
	if s.section != "" && s.hasItem() {
		return s.setItemField(key, trimmed)
	}
	return s.setRuleField(key, extractValue(trimmed))
}

func (s *scanner) newItem(trimmed string) bool {
	s.appendItem()
	afterDash := strings.TrimSpace(trimmed[2:])
	if afterDash == "" {
		return true
	}
	key, ok := keyOf(afterDash)
	if !ok {
		return false
	}
	return s.setItemField(key, afterDash)
}

func (s *scanner) setRuleField(key, value string) bool {
	switch key {
	case "name":
		s.rule.Name = value
	case "entity":
		s.rule.Entity = value
	case "predefinedType":
		s.rule.PredefinedType = value
	default:
		return false
	}
	return true
}

// openSection resets the item state and puts an empty array under the
// named facet key, matching the "key: opens a new empty array" rule.
func (s *scanner) openSection(key string) {
	s.section = key
	s.clearItem()
	switch key {
	case "attributes":
		s.rule.Attributes = []*document.Requirement{}
	case "properties":
		s.rule.Properties = []*document.Requirement{}
	case "quantities":
		s.rule.Quantities = []*document.Requirement{}
	case "partOf":
		s.rule.PartOf = []*document.PartOf{}
	case "requiredPartOf":
		s.rule.RequiredPartOf = []*document.PartOf{}
	case "classifications":
		s.rule.Classifications = []*document.Classification{}
	case "requiredClassifications":
		s.rule.RequiredClassifications = []*document.Classification{}
	case "materials":
		s.rule.Materials = []*document.Material{}
	case "requiredMaterials":
		s.rule.RequiredMaterials = []*document.Material{}
	}
}

func (s *scanner) clearItem() {
	s.req, s.rel, s.cls, s.mat = nil, nil, nil, nil
}

func (s *scanner) hasItem() bool {
	return s.req != nil || s.rel != nil || s.cls != nil || s.mat != nil
}

func (s *scanner) appendItem() {
	s.clearItem()
	switch s.section {
	case "attributes":
		s.req = &document.Requirement{}
		s.rule.Attributes = append(s.rule.Attributes, s.req)
	case "properties":
		s.req = &document.Requirement{}
		s.rule.Properties = append(s.rule.Properties, s.req)
	case "quantities":
		s.req = &document.Requirement{}
		s.rule.Quantities = append(s.rule.Quantities, s.req)
	case "partOf":
		s.rel = &document.PartOf{}
		s.rule.PartOf = append(s.rule.PartOf, s.rel)
	case "requiredPartOf":
		s.rel = &document.PartOf{}
		s.rule.RequiredPartOf = append(s.rule.RequiredPartOf, s.rel)
	case "classifications":
		s.cls = &document.Classification{}
		s.rule.Classifications = append(s.rule.Classifications, s.cls)
	case "requiredClassifications":
		s.cls = &document.Classification{}
		s.rule.RequiredClassifications = append(s.rule.RequiredClassifications, s.cls)
	case "materials":
		s.mat = &document.Material{}
		s.rule.Materials = append(s.rule.Materials, s.mat)
	case "requiredMaterials":
		s.mat = &document.Material{}
		s.rule.RequiredMaterials = append(s.rule.RequiredMaterials, s.mat)
	}
}

// setItemField takes the full "key: value" text so allowed_values can
// reparse the raw bracketed list.
func (s *scanner) setItemField(key, kv string) bool {
	value := extractValue(kv)
	switch {
	case s.req != nil:
		return s.setRequirementField(key, value)
	case s.rel != nil:
		switch key {
		case "entity":
			s.rel.Entity = value
		case "predefinedType":
			s.rel.PredefinedType = value
		case "relation":
			s.rel.Relation = value
		case "instructions":
			s.rel.Instructions = value
		default:
			return false
		}
		return true
	case s.cls != nil:
		switch key {
		case "system":
			s.cls.System = value
		case "value":
			s.cls.Value = value
		case "uri":
			s.cls.URI = value
		case "instructions":
			s.cls.Instructions = value
		default:
			return false
		}
		return true
	case s.mat != nil:
		switch key {
		case "value":
			s.mat.Value = value
		case "uri":
			s.mat.URI = value
		case "instructions":
			s.mat.Instructions = value
		default:
			return false
		}
		return true
	}
	return false
}

func (s *scanner) setRequirementField(key, value string) bool {
	switch key {
	case "name":
		s.req.Name = value
	case "datatype":
		s.req.Datatype = document.Datatype(value)
	case "presence":
		s.req.Presence = document.Presence(value)
	case "pattern":
		s.req.Pattern = value
	case "uri":
		s.req.URI = value
	case "instructions":
		s.req.Instructions = value
	case "allowed_values":
		values, ok := parseBracketList(value)
		if !ok {
			return false
		}
		s.req.AllowedValues = values
	default:
		return false
	}
	return true
}

// parseBracketList reads the compact allowed_values form: a bracketed,
// comma-separated list with individually optional quotes.
func parseBracketList(value string) ([]any, bool) {
	if !strings.HasPrefix(value, "[") || !strings.HasSuffix(value, "]") {
		return nil, false
	}
	inner := value[1 : len(value)-1]
	if strings.TrimSpace(inner) == "" {
		return []any{}, true
	}
	parts := strings.Split(inner, ",")
	values := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if uq, ok := unquote(p); ok {
			p = uq
		}
		values = append(values, p)
	}
	return values, true
}

// keyOf returns the key of a "key: value" line.
func keyOf(line string) (string, bool) {
	key, _, ok := strings.Cut(line, ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(key), true
}

// extractValue returns the value of a "key: value" line with surrounding
// quotes and any unquoted inline " #" comment suffix removed.
func extractValue(line string) string {
	_, v, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	v = strings.TrimSpace(v)
	if uq, ok := unquote(v); ok {
		return uq
	}
	if strings.HasPrefix(v, "#") {
		return ""
	}
	if i := strings.Index(v, " #"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	if uq, ok := unquote(v); ok {
		return uq
	}
	return v
}

func unquote(v string) (string, bool) {
	if len(v) < 2 {
		return v, false
	}
	if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1], true
	}
	return v, false
}
