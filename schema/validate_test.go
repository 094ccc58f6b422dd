package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ids-light/go-idslight/document"
)

// okRule returns a minimal rule that passes validation.
func okRule(name string) *document.Rule {
	return &document.Rule{
		Name:   name,
		Entity: "IfcDoor",
		Attributes: []*document.Requirement{
			{Name: "Name"},
		},
	}
}

func okDoc(rules ...*document.Rule) *document.Document {
	return &document.Document{IDS: document.Spec{
		IFCVersion: document.IFC4,
		Rules:      rules,
	}}
}

func TestValidateOK(t *testing.T) {
	doc := okDoc(&document.Rule{
		Name:           "doors",
		Entity:         "IfcDoor",
		PredefinedType: "DOOR",
		PartOf: []*document.PartOf{
			{Entity: "IfcBuildingStorey", Relation: "IFCRELAGGREGATES"},
		},
		Classifications: []*document.Classification{
			{System: "Uniclass"},
		},
		Materials: []*document.Material{
			{},
		},
		Properties: []*document.Requirement{
			{
				Name:          "Pset_DoorCommon.FireRating",
				Datatype:      document.DatatypeString,
				Presence:      document.PresenceRequired,
				AllowedValues: []any{"EI30", "EI60", json.Number("30"), true},
			},
		},
		Quantities: []*document.Requirement{
			{Name: "Qto_DoorBaseQuantities.Width"},
		},
		RequiredPartOf: []*document.PartOf{
			{Entity: "IfcWall"},
		},
		RequiredClassifications: []*document.Classification{
			{System: "eBKP", Value: "C2.1"},
		},
		RequiredMaterials: []*document.Material{
			{Value: "Concrete"},
		},
	})
	res := Validate(doc)
	if !res.Valid {
		t.Fatalf("valid document rejected:\n%s", res)
	}
	if res.String() != "ok" {
		t.Errorf("String() = %q", res.String())
	}
}

func TestValidateStructural(t *testing.T) {
	tests := []struct {
		name string
		doc  *document.Document
		want []Validation
	}{
		{
			name: "nil document",
			doc:  nil,
			want: []Validation{{Path: "", Message: "missing required property 'ids'"}},
		},
		{
			name: "no ifcVersion",
			doc:  &document.Document{IDS: document.Spec{Rules: []*document.Rule{okRule("")}}},
			want: []Validation{{Path: "/ids", Message: "missing required property 'ifcVersion'"}},
		},
		{
			name: "no rules",
			doc:  &document.Document{IDS: document.Spec{IFCVersion: document.IFC4}},
			want: []Validation{{Path: "/ids/rules", Message: "must contain at least one rule"}},
		},
		{
			name: "empty rules",
			doc:  okDoc(),
			want: []Validation{{Path: "/ids/rules", Message: "must contain at least one rule"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.doc)
			if res.Valid {
				t.Fatal("invalid document accepted")
			}
			if diff := cmp.Diff(tt.want, res.Errors); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateIFCVersionEnum(t *testing.T) {
	doc := okDoc(okRule(""))
	doc.IDS.IFCVersion = "IFC9"
	res := Validate(doc)
	if res.Valid {
		t.Fatal("invalid ifcVersion accepted")
	}
	v := res.Errors[0]
	if v.Path != "/ids/ifcVersion" {
		t.Errorf("path = %q", v.Path)
	}
	for _, want := range []string{`"IFC9"`, "IFC2X3", "IFC4", "IFC4X3_ADD2"} {
		if !strings.Contains(v.Message, want) {
			t.Errorf("message %q does not mention %s", v.Message, want)
		}
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name string
		rule *document.Rule
		want []Validation
	}{
		{
			name: "missing entity",
			rule: &document.Rule{Attributes: []*document.Requirement{{Name: "Name"}}},
			want: []Validation{{Path: "/ids/rules/0", Message: "missing required property 'entity'"}},
		},
		{
			name: "short entity",
			rule: &document.Rule{Entity: "If", Attributes: []*document.Requirement{{Name: "Name"}}},
			want: []Validation{{Path: "/ids/rules/0/entity", Message: "must be at least 3 characters"}},
		},
		{
			name: "no requirements",
			rule: &document.Rule{Entity: "IfcDoor"},
			want: []Validation{{
				Path:    "/ids/rules/0",
				Message: "must have at least one requirement (properties, attributes, quantities, requiredPartOf, requiredClassifications, or requiredMaterials)",
			}},
		},
		{
			name: "applicability only is not a requirement",
			rule: &document.Rule{
				Entity:          "IfcDoor",
				PartOf:          []*document.PartOf{{Entity: "IfcWall"}},
				Classifications: []*document.Classification{{System: "Uniclass"}},
				Materials:       []*document.Material{{Value: "Wood"}},
			},
			want: []Validation{{
				Path:    "/ids/rules/0",
				Message: "must have at least one requirement (properties, attributes, quantities, requiredPartOf, requiredClassifications, or requiredMaterials)",
			}},
		},
		{
			name: "requirement without name",
			rule: &document.Rule{
				Entity:     "IfcDoor",
				Properties: []*document.Requirement{{Datatype: document.DatatypeString}},
			},
			want: []Validation{{Path: "/ids/rules/0/properties/0", Message: "missing required property 'name'"}},
		},
		{
			name: "empty facet array",
			rule: &document.Rule{
				Entity:     "IfcDoor",
				Attributes: []*document.Requirement{{Name: "Name"}},
				Properties: []*document.Requirement{},
			},
			want: []Validation{{Path: "/ids/rules/0/properties", Message: "must contain at least one item"}},
		},
		{
			name: "empty allowed_values",
			rule: &document.Rule{
				Entity: "IfcDoor",
				Properties: []*document.Requirement{
					{Name: "X", AllowedValues: []any{}},
				},
			},
			want: []Validation{{Path: "/ids/rules/0/properties/0/allowed_values", Message: "must contain at least one value"}},
		},
		{
			name: "non-scalar allowed values",
			rule: &document.Rule{
				Entity: "IfcDoor",
				Properties: []*document.Requirement{
					{Name: "X", AllowedValues: []any{
						map[string]any{"x": 1},
						[]any{"EI30"},
						"EI30",
					}},
				},
			},
			want: []Validation{
				{Path: "/ids/rules/0/properties/0/allowed_values/0", Message: "must be a string, number, or boolean"},
				{Path: "/ids/rules/0/properties/0/allowed_values/1", Message: "must be a string, number, or boolean"},
			},
		},
		{
			name: "partOf without entity",
			rule: &document.Rule{
				Entity:     "IfcDoor",
				PartOf:     []*document.PartOf{{Relation: "IFCRELAGGREGATES"}},
				Attributes: []*document.Requirement{{Name: "Name"}},
			},
			want: []Validation{{Path: "/ids/rules/0/partOf/0", Message: "missing required property 'entity'"}},
		},
		{
			name: "classification without system",
			rule: &document.Rule{
				Entity:                  "IfcDoor",
				RequiredClassifications: []*document.Classification{{Value: "C2.1"}},
			},
			want: []Validation{{Path: "/ids/rules/0/requiredClassifications/0", Message: "missing required property 'system'"}},
		},
		{
			name: "required material without value",
			rule: &document.Rule{
				Entity:            "IfcDoor",
				RequiredMaterials: []*document.Material{{URI: "https://example.com"}},
			},
			want: []Validation{{Path: "/ids/rules/0/requiredMaterials/0", Message: "missing required property 'value'"}},
		},
		{
			name: "legacy classification without system",
			rule: &document.Rule{
				Entity:         "IfcDoor",
				Attributes:     []*document.Requirement{{Name: "Name"}},
				Classification: &document.LegacyClassification{Value: "C2.1"},
			},
			want: []Validation{{Path: "/ids/rules/0/classification", Message: "missing required property 'system'"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(okDoc(tt.rule))
			if res.Valid {
				t.Fatal("invalid rule accepted")
			}
			if diff := cmp.Diff(tt.want, res.Errors); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateEnumFields(t *testing.T) {
	tests := []struct {
		name  string
		req   *document.Requirement
		path  string
		parts []string
	}{
		{
			name:  "bad datatype",
			req:   &document.Requirement{Name: "X", Datatype: "float128"},
			path:  "/ids/rules/0/properties/0/datatype",
			parts: []string{`"float128"`, "string", "boolean", "thermaltransmittance"},
		},
		{
			name:  "bad presence",
			req:   &document.Requirement{Name: "X", Presence: "maybe"},
			path:  "/ids/rules/0/properties/0/presence",
			parts: []string{`"maybe"`, "required", "optional", "prohibited"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := okDoc(&document.Rule{
				Entity:     "IfcDoor",
				Properties: []*document.Requirement{tt.req},
			})
			res := Validate(doc)
			if res.Valid {
				t.Fatal("invalid enum value accepted")
			}
			if len(res.Errors) != 1 {
				t.Fatalf("errors = %v", res.Errors)
			}
			v := res.Errors[0]
			if v.Path != tt.path {
				t.Errorf("path = %q, want %q", v.Path, tt.path)
			}
			for _, p := range tt.parts {
				if !strings.Contains(v.Message, p) {
					t.Errorf("message %q does not mention %s", v.Message, p)
				}
			}
		})
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	res := Validate(okDoc(okRule("walls"), okRule("doors"), okRule("walls"), okRule("doors")))
	if res.Valid {
		t.Fatal("duplicate names accepted")
	}
	want := []Validation{{
		Path:    "/ids/rules",
		Message: `Duplicate rule names: "doors", "walls"`,
	}}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestValidateAccumulates(t *testing.T) {
	res := Validate(okDoc(
		&document.Rule{},
		&document.Rule{Entity: "IfcWall", Quantities: []*document.Requirement{{}}},
	))
	if res.Valid {
		t.Fatal("invalid document accepted")
	}
	// Rule 0 has no entity and no requirements, rule 1 a nameless quantity.
	if len(res.Errors) != 3 {
		t.Fatalf("got %d errors, want 3:\n%s", len(res.Errors), res)
	}
	if got := len(res.Strings()); got != 3 {
		t.Errorf("Strings() has %d entries", got)
	}
}
