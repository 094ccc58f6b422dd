// Package query selects rules from a document with boolean expressions.
//
// # Usage
//
//	rules, err := query.Select(doc, `entity startsWith "IfcWall"`)
//
// Expressions are compiled once per Select call and evaluated against a
// per-rule environment exposing name, entity, predefinedType and the
// facet counts (properties, attributes, quantities, partOf,
// classifications, materials, requiredPartOf, requiredClassifications,
// requiredMaterials).
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ids-light/go-idslight/document"
)

// Compile compiles a rule-selection expression. The expression must
// evaluate to a boolean.
func Compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return prg, nil
}

// Select returns the rules of doc for which the expression is true, in
// document order.
func Select(doc *document.Document, src string) ([]*document.Rule, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var out []*document.Rule
	for i, rule := range doc.IDS.Rules {
		if rule == nil {
			continue
		}
		res, err := expr.Run(prg, ruleEnv(rule))
		if err != nil {
			return nil, fmt.Errorf("query: rule %d: %w", i, err)
		}
		if res.(bool) {
			out = append(out, rule)
		}
	}
	return out, nil
}

func ruleEnv(r *document.Rule) map[string]any {
	return map[string]any{
		"name":                    r.Name,
		"entity":                  r.Entity,
		"predefinedType":          r.PredefinedType,
		"properties":              len(r.Properties),
		"attributes":              len(r.Attributes),
		"quantities":              len(r.Quantities),
		"partOf":                  len(r.PartOf),
		"classifications":         len(r.Classifications),
		"materials":               len(r.Materials),
		"requiredPartOf":          len(r.RequiredPartOf),
		"requiredClassifications": len(r.RequiredClassifications),
		"requiredMaterials":       len(r.RequiredMaterials),
	}
}
