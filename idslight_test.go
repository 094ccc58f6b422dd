package idslight

import (
	"strings"
	"testing"
)

const wallsYAML = `
ids:
  title: "Basic wall checks"
  author: "Jane Doe"
  ifcVersion: "IFC4"
  rules:
    - name: "wall quantities"
      entity: "IfcWall"
      quantities:
        - name: "Qto_WallBaseQuantities.Width"
      properties:
        - name: "Pset_WallCommon.FireRating"
          datatype: "string"
          presence: "required"
          allowed_values: [EI30, EI60, EI90]
`

func TestPipeline(t *testing.T) {
	doc, err := Parse(wallsYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	res := Validate(doc)
	if !res.Valid {
		t.Fatalf("Validate:\n%s", res)
	}
	xml, err := Convert(doc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<ids:specification name="wall quantities" ifcVersion="IFC4">`,
		`<ids:simpleValue>IFCWALL</ids:simpleValue>`,
		`<ids:author>janedoe@ids-light.com</ids:author>`,
		`dataType="IFCLENGTHMEASURE"`,
		`dataType="IFCLABEL"`,
		`<xs:enumeration value="EI30"/>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("XML does not contain %q", want)
		}
	}
}

func TestPipelineStopsOnInvalid(t *testing.T) {
	doc, err := Parse(`{"ids": {"rules": [{"entity": "IfcWall"}]}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	res := Validate(doc)
	if res.Valid {
		t.Fatal("invalid document accepted")
	}
	got := res.Strings()
	if len(got) != 2 {
		t.Fatalf("diagnostics = %v", got)
	}
}

func TestPipelineParseError(t *testing.T) {
	if _, err := Parse("rules:\n  - entity: IfcWall\n  !!garbage\n"); err == nil {
		t.Fatal("expected parse error")
	}
}
