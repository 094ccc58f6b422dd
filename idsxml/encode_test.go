package idsxml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ids-light/go-idslight/document"
)

func doorDoc() *document.Document {
	return &document.Document{IDS: document.Spec{
		Title:      "Door check",
		Author:     "Jane Doe",
		IFCVersion: document.IFC4,
		Rules: []*document.Rule{
			{
				Entity: "IfcDoor",
				Properties: []*document.Requirement{
					{
						Name:          "Pset_DoorCommon.FireRating",
						Datatype:      document.DatatypeString,
						Presence:      document.PresenceRequired,
						AllowedValues: []any{"EI30", "EI60", "EI90"},
					},
				},
			},
		},
	}}
}

const doorXML = `<?xml version="1.0" encoding="UTF-8"?>
<ids:ids xmlns:ids="http://standards.buildingsmart.org/IDS" xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://standards.buildingsmart.org/IDS http://standards.buildingsmart.org/IDS/1.0/ids.xsd">
  <ids:info>
    <ids:title>Door check</ids:title>
    <ids:author>janedoe@ids-light.com</ids:author>
  </ids:info>
  <ids:specifications>
    <ids:specification name="IfcDoor" ifcVersion="IFC4">
      <ids:applicability minOccurs="1" maxOccurs="unbounded">
        <ids:entity>
          <ids:name>
            <ids:simpleValue>IFCDOOR</ids:simpleValue>
          </ids:name>
        </ids:entity>
      </ids:applicability>
      <ids:requirements description="Generated from IDS-Light">
        <ids:property dataType="IFCLABEL" cardinality="required">
          <ids:propertySet>
            <ids:simpleValue>Pset_DoorCommon</ids:simpleValue>
          </ids:propertySet>
          <ids:baseName>
            <ids:simpleValue>FireRating</ids:simpleValue>
          </ids:baseName>
          <ids:value>
            <xs:restriction base="xs:string">
              <xs:enumeration value="EI30"/>
              <xs:enumeration value="EI60"/>
              <xs:enumeration value="EI90"/>
            </xs:restriction>
          </ids:value>
        </ids:property>
      </ids:requirements>
    </ids:specification>
  </ids:specifications>
</ids:ids>`

func TestEncodePretty(t *testing.T) {
	got, err := String(doorDoc())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if diff := cmp.Diff(doorXML, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := String(doorDoc())
	if err != nil {
		t.Fatal(err)
	}
	b, err := String(doorDoc())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("two encodings of the same document differ")
	}
}

func TestEncodeCompact(t *testing.T) {
	got, err := String(doorDoc(), Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if strings.Count(got, "\n") != 0 {
		t.Error("compact output is not a single line")
	}
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<ids:propertySet><ids:simpleValue>Pset_DoorCommon</ids:simpleValue></ids:propertySet>`,
		`<ids:baseName><ids:simpleValue>FireRating</ids:simpleValue></ids:baseName>`,
		`dataType="IFCLABEL"`,
		`cardinality="required"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestEncodeNilDoc(t *testing.T) {
	if _, err := String(nil); err != ErrNoRoot {
		t.Errorf("err = %v, want ErrNoRoot", err)
	}
}

func TestEncodeQuantityMeasure(t *testing.T) {
	doc := &document.Document{IDS: document.Spec{
		IFCVersion: document.IFC4,
		Rules: []*document.Rule{
			{
				Entity: "IfcWall",
				Quantities: []*document.Requirement{
					{Name: "Qto_WallBaseQuantities.Width"},
					{Name: "Qto_WallBaseQuantities.GrossSideArea"},
					{Name: "Qto_WallBaseQuantities.NetVolume"},
					{Name: "Qto_WallBaseQuantities.Something"},
					{Name: "Qto_WallBaseQuantities.Height", Datatype: document.DatatypeLength},
				},
			},
		},
	}}
	got, err := String(doc, Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	for _, want := range []string{
		`dataType="IFCLENGTHMEASURE"`,
		`dataType="IFCAREAMEASURE"`,
		`dataType="IFCVOLUMEMEASURE"`,
		`dataType="IFCREAL"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if strings.Count(got, `dataType="IFCLENGTHMEASURE"`) != 2 {
		t.Error("declared length datatype not honored")
	}
}

func TestEncodeThermalOverride(t *testing.T) {
	doc := &document.Document{IDS: document.Spec{
		IFCVersion: document.IFC4,
		Rules: []*document.Rule{
			{
				Entity: "IfcWindow",
				Properties: []*document.Requirement{
					{Name: "Pset_WindowCommon.ThermalTransmittance", Datatype: document.DatatypeString},
				},
			},
		},
	}}
	got, err := String(doc, Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !strings.Contains(got, `dataType="IFCTHERMALTRANSMITTANCEMEASURE"`) {
		t.Errorf("thermal override missing:\n%s", got)
	}
}

func TestEncodeFacets(t *testing.T) {
	doc := &document.Document{IDS: document.Spec{
		IFCVersion: document.IFC4,
		Rules: []*document.Rule{
			{
				Name:           "storey walls",
				Entity:         "IfcWall",
				PredefinedType: "SOLIDWALL",
				PartOf: []*document.PartOf{
					{Entity: "IfcBuildingStorey", Relation: "IFCRELCONTAINEDINSPATIALSTRUCTURE"},
				},
				Classifications: []*document.Classification{
					{System: "Uniclass", Value: "EF_25_10"},
				},
				Materials: []*document.Material{
					{Value: "Concrete"},
				},
				Attributes: []*document.Requirement{
					{Name: "Name", Presence: document.PresenceOptional},
				},
				RequiredPartOf: []*document.PartOf{
					{Entity: "IfcBuilding"},
				},
				RequiredClassifications: []*document.Classification{
					{System: "eBKP", Value: "C2.1", URI: "https://example.com/ebkp"},
				},
				RequiredMaterials: []*document.Material{
					{Value: "Concrete", Instructions: "load-bearing walls only"},
				},
			},
		},
	}}
	got, err := String(doc, Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	for _, want := range []string{
		`<ids:specification name="storey walls" ifcVersion="IFC4">`,
		`<ids:applicability minOccurs="1" maxOccurs="unbounded">`,
		`<ids:name><ids:simpleValue>IFCWALL</ids:simpleValue></ids:name>`,
		`<ids:predefinedType><ids:simpleValue>SOLIDWALL</ids:simpleValue></ids:predefinedType>`,
		`<ids:partOf relation="IFCRELCONTAINEDINSPATIALSTRUCTURE"><ids:entity><ids:name><ids:simpleValue>IFCBUILDINGSTOREY</ids:simpleValue></ids:name></ids:entity></ids:partOf>`,
		`<ids:classification><ids:system><ids:simpleValue>Uniclass</ids:simpleValue></ids:system><ids:value><ids:simpleValue>EF_25_10</ids:simpleValue></ids:value></ids:classification>`,
		`<ids:material><ids:value><ids:simpleValue>Concrete</ids:simpleValue></ids:value></ids:material>`,
		`<ids:requirements description="Generated from IDS-Light">`,
		`<ids:partOf cardinality="required"><ids:entity><ids:name><ids:simpleValue>IFCBUILDING</ids:simpleValue></ids:name></ids:entity></ids:partOf>`,
		`<ids:classification cardinality="required" uri="https://example.com/ebkp">`,
		`<ids:material cardinality="required" instructions="load-bearing walls only">`,
		`<ids:attribute cardinality="optional"><ids:name><ids:simpleValue>Name</ids:simpleValue></ids:name></ids:attribute>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestEncodePattern(t *testing.T) {
	doc := &document.Document{IDS: document.Spec{
		IFCVersion: document.IFC4,
		Rules: []*document.Rule{
			{
				Entity: "IfcDoor",
				Properties: []*document.Requirement{
					{Name: "Pset_DoorCommon.Reference", Pattern: "D-[0-9]{3}"},
				},
			},
		},
	}}
	got, err := String(doc, Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	// Absent datatype still yields a string-based restriction when a
	// pattern is present.
	if !strings.Contains(got, `<ids:value><xs:restriction base="xs:string"><xs:pattern value="D-[0-9]{3}"/></xs:restriction></ids:value>`) {
		t.Errorf("pattern restriction missing:\n%s", got)
	}
	if !strings.Contains(got, `dataType="IFCLABEL"`) {
		t.Error("absent datatype did not default to IFCLABEL")
	}
}

func TestEncodeEscaping(t *testing.T) {
	doc := &document.Document{IDS: document.Spec{
		Title:      `Fire & "smoke" <doors>`,
		IFCVersion: document.IFC4,
		Rules: []*document.Rule{
			{
				Entity: "IfcDoor",
				Attributes: []*document.Requirement{
					{Name: "Name", Instructions: `use 'short' names & ids`},
				},
			},
		},
	}}
	got, err := String(doc, Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !strings.Contains(got, `<ids:title>Fire &amp; &quot;smoke&quot; &lt;doors&gt;</ids:title>`) {
		t.Errorf("text escaping wrong:\n%s", got)
	}
	if !strings.Contains(got, `instructions="use &apos;short&apos; names &amp; ids"`) {
		t.Errorf("attribute escaping wrong:\n%s", got)
	}
}

func TestEncodeSpecificationPerRule(t *testing.T) {
	doc := &document.Document{IDS: document.Spec{
		IFCVersion: document.IFC2X3,
		Rules: []*document.Rule{
			{Entity: "IfcDoor", Attributes: []*document.Requirement{{Name: "Name"}}},
			{Entity: "IfcWall", Attributes: []*document.Requirement{{Name: "Name"}}},
			nil,
			{Entity: "IfcSlab", Attributes: []*document.Requirement{{Name: "Name"}}},
		},
	}}
	got, err := String(doc, Compact())
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if n := strings.Count(got, "<ids:specification "); n != 3 {
		t.Errorf("got %d specifications, want 3", n)
	}
	if strings.Count(got, `ifcVersion="IFC2X3"`) != 3 {
		t.Error("ifcVersion not repeated on each specification")
	}
}
