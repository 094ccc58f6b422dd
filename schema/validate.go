package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ids-light/go-idslight/debug"
	"github.com/ids-light/go-idslight/document"
)

// requirementFacets names the facet arrays that count as requirements.
// A rule must carry at least one of them non-empty.
var requirementFacets = "properties, attributes, quantities, requiredPartOf, requiredClassifications, or requiredMaterials"

// Validate checks a document against the IDS-Light structural contract.
// It never fails with an error value of its own; structural absence
// (missing root, missing ifcVersion, no rules) stops the walk early,
// per-rule findings accumulate.
//
// A missing ids root is only reportable for a nil document. After
// decoding, an input without an ids key is indistinguishable from one
// with an empty ids object, so both report the missing fields inside it
// (ifcVersion, rules) instead.
func Validate(doc *document.Document) *Result {
	res := &Result{}
	defer func() {
		res.Valid = len(res.Errors) == 0
		if debug.Schema() && !res.Valid {
			for _, v := range res.Errors {
				debug.Logf("schema: %s\n", v)
			}
		}
	}()

	if doc == nil {
		res.add("", "missing required property 'ids'")
		return res
	}
	if doc.IDS.IFCVersion == "" {
		res.add("/ids", "missing required property 'ifcVersion'")
	} else if !ifcVersionEnum.has(string(doc.IDS.IFCVersion)) {
		res.add("/ids/ifcVersion", "invalid value %q, must be one of %s", doc.IDS.IFCVersion, ifcVersionEnum)
	}
	if len(doc.IDS.Rules) == 0 {
		res.add("/ids/rules", "must contain at least one rule")
		return res
	}

	names := map[string]int{}
	order := []string{}
	for i, rule := range doc.IDS.Rules {
		path := fmt.Sprintf("/ids/rules/%d", i)
		if rule == nil {
			res.add(path, "must be an object")
			continue
		}
		if rule.Name != "" {
			if names[rule.Name] == 0 {
				order = append(order, rule.Name)
			}
			names[rule.Name]++
		}
		validateRule(res, path, rule)
	}

	dups := []string{}
	for _, name := range order {
		if names[name] > 1 {
			dups = append(dups, fmt.Sprintf("%q", name))
		}
	}
	sort.Strings(dups)
	if len(dups) > 0 {
		res.add("/ids/rules", "Duplicate rule names: %s", strings.Join(dups, ", "))
	}
	return res
}

func validateRule(res *Result, path string, rule *document.Rule) {
	if rule.Entity == "" {
		res.add(path, "missing required property 'entity'")
	} else if len(rule.Entity) < 3 {
		res.add(path+"/entity", "must be at least 3 characters")
	}

	hasRequirement := len(rule.Properties) > 0 || len(rule.Attributes) > 0 ||
		len(rule.Quantities) > 0 || len(rule.RequiredPartOf) > 0 ||
		len(rule.RequiredClassifications) > 0 || len(rule.RequiredMaterials) > 0
	if !hasRequirement {
		res.add(path, "must have at least one requirement (%s)", requirementFacets)
	}

	validateRequirements(res, path+"/attributes", rule.Attributes)
	validateRequirements(res, path+"/properties", rule.Properties)
	validateRequirements(res, path+"/quantities", rule.Quantities)
	validatePartOf(res, path+"/partOf", rule.PartOf)
	validatePartOf(res, path+"/requiredPartOf", rule.RequiredPartOf)
	validateClassifications(res, path+"/classifications", rule.Classifications)
	validateClassifications(res, path+"/requiredClassifications", rule.RequiredClassifications)
	validateMaterials(res, path+"/materials", rule.Materials, materialSchema)
	validateMaterials(res, path+"/requiredMaterials", rule.RequiredMaterials, requiredMaterialSchema)
	if rule.Classification != nil && rule.Classification.System == "" {
		res.add(path+"/classification", "missing required property 'system'")
	}
}

// apply interprets the declarative field rules for a single facet item.
func apply(res *Result, path string, fields []field, rules []fieldRule) {
	byName := make(map[string]string, len(fields))
	for _, f := range fields {
		byName[f.name] = f.value
	}
	for _, r := range rules {
		v := byName[r.name]
		if v == "" {
			if r.required {
				res.add(path, "missing required property '%s'", r.name)
			}
			continue
		}
		if r.minLen > 1 && len(v) < r.minLen {
			res.add(path+"/"+r.name, "must be at least %d characters", r.minLen)
		}
		if r.enum != nil && !r.enum.has(v) {
			res.add(path+"/"+r.name, "invalid value %q, must be one of %s", v, r.enum)
		}
	}
}

// scalarValue reports whether an allowed_values entry is a scalar
// literal. The strict JSON decoder yields string/bool/json.Number;
// hand-built documents may carry native Go numerics.
func scalarValue(v any) bool {
	switch v.(type) {
	case string, bool, json.Number, int, int64, float64:
		return true
	}
	return false
}

func emptyList(res *Result, path string, n int, present bool) bool {
	if present && n == 0 {
		res.add(path, "must contain at least one item")
		return true
	}
	return false
}

func validateRequirements(res *Result, path string, items []*document.Requirement) {
	if emptyList(res, path, len(items), items != nil) {
		return
	}
	for i, item := range items {
		p := fmt.Sprintf("%s/%d", path, i)
		if item == nil {
			res.add(p, "must be an object")
			continue
		}
		apply(res, p, requirementFields(item), requirementSchema)
		if item.AllowedValues != nil && len(item.AllowedValues) == 0 {
			res.add(p+"/allowed_values", "must contain at least one value")
		}
		for j, v := range item.AllowedValues {
			if !scalarValue(v) {
				res.add(fmt.Sprintf("%s/allowed_values/%d", p, j), "must be a string, number, or boolean")
			}
		}
	}
}

func validatePartOf(res *Result, path string, items []*document.PartOf) {
	if emptyList(res, path, len(items), items != nil) {
		return
	}
	for i, item := range items {
		p := fmt.Sprintf("%s/%d", path, i)
		if item == nil {
			res.add(p, "must be an object")
			continue
		}
		apply(res, p, partOfFields(item), partOfSchema)
	}
}

func validateClassifications(res *Result, path string, items []*document.Classification) {
	if emptyList(res, path, len(items), items != nil) {
		return
	}
	for i, item := range items {
		p := fmt.Sprintf("%s/%d", path, i)
		if item == nil {
			res.add(p, "must be an object")
			continue
		}
		apply(res, p, classificationFields(item), classificationSchema)
	}
}

func validateMaterials(res *Result, path string, items []*document.Material, rules []fieldRule) {
	if emptyList(res, path, len(items), items != nil) {
		return
	}
	for i, item := range items {
		p := fmt.Sprintf("%s/%d", path, i)
		if item == nil {
			res.add(p, "must be an object")
			continue
		}
		apply(res, p, materialFields(item), rules)
	}
}
