package document

// IFCVersion is the IFC schema release a document targets.
type IFCVersion string

const (
	IFC2X3     IFCVersion = "IFC2X3"
	IFC4       IFCVersion = "IFC4"
	IFC4X3ADD2 IFCVersion = "IFC4X3_ADD2"
)

// IFCVersions returns the accepted ifcVersion values in declaration order.
func IFCVersions() []IFCVersion {
	return []IFCVersion{IFC2X3, IFC4, IFC4X3ADD2}
}

// Presence controls the cardinality of a requirement facet.
type Presence string

const (
	PresenceRequired   Presence = "required"
	PresenceOptional   Presence = "optional"
	PresenceProhibited Presence = "prohibited"
)

// Presences returns the accepted presence values in declaration order.
func Presences() []Presence {
	return []Presence{PresenceRequired, PresenceOptional, PresenceProhibited}
}

// Datatype is a simplified IDS-Light datatype. The empty value means
// "unspecified" and resolves to a label (or, for quantities, to a
// measure guessed from the base name).
type Datatype string

const (
	DatatypeString               Datatype = "string"
	DatatypeBoolean              Datatype = "boolean"
	DatatypeInteger              Datatype = "integer"
	DatatypeNumber               Datatype = "number"
	DatatypeLength               Datatype = "length"
	DatatypeArea                 Datatype = "area"
	DatatypeVolume               Datatype = "volume"
	DatatypeCount                Datatype = "count"
	DatatypeDate                 Datatype = "date"
	DatatypeDatetime             Datatype = "datetime"
	DatatypeTime                 Datatype = "time"
	DatatypeThermalTransmittance Datatype = "thermaltransmittance"
	DatatypeVolumetricFlowRate   Datatype = "volumetricflowrate"
	DatatypePower                Datatype = "power"
	DatatypeElectricVoltage      Datatype = "electricvoltage"
)

// Datatypes returns the accepted datatype values in declaration order.
func Datatypes() []Datatype {
	return []Datatype{
		DatatypeString,
		DatatypeBoolean,
		DatatypeInteger,
		DatatypeNumber,
		DatatypeLength,
		DatatypeArea,
		DatatypeVolume,
		DatatypeCount,
		DatatypeDate,
		DatatypeDatetime,
		DatatypeTime,
		DatatypeThermalTransmittance,
		DatatypeVolumetricFlowRate,
		DatatypePower,
		DatatypeElectricVoltage,
	}
}

// Document is the root of an IDS-Light document.
type Document struct {
	IDS Spec `json:"ids" yaml:"ids"`
}

// Spec holds the document metadata and its rules.
type Spec struct {
	Title       string     `json:"title,omitempty" yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string     `json:"author,omitempty" yaml:"author,omitempty"`
	Date        string     `json:"date,omitempty" yaml:"date,omitempty"`
	IFCVersion  IFCVersion `json:"ifcVersion" yaml:"ifcVersion"`
	Rules       []*Rule    `json:"rules" yaml:"rules"`
}

// Rule is one applicability+requirement group.
//
// Applicability facets restrict which elements the rule targets; the
// requirement facets are the constraints matching elements must satisfy.
// A rule without at least one non-empty requirement facet is meaningless
// and rejected by schema.Validate.
type Rule struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Entity         string `json:"entity,omitempty" yaml:"entity,omitempty"`
	PredefinedType string `json:"predefinedType,omitempty" yaml:"predefinedType,omitempty"`

	// Applicability facets.
	PartOf          []*PartOf         `json:"partOf,omitempty" yaml:"partOf,omitempty"`
	Classifications []*Classification `json:"classifications,omitempty" yaml:"classifications,omitempty"`
	Materials       []*Material       `json:"materials,omitempty" yaml:"materials,omitempty"`

	// Requirement facets.
	Attributes              []*Requirement    `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Properties              []*Requirement    `json:"properties,omitempty" yaml:"properties,omitempty"`
	Quantities              []*Requirement    `json:"quantities,omitempty" yaml:"quantities,omitempty"`
	RequiredPartOf          []*PartOf         `json:"requiredPartOf,omitempty" yaml:"requiredPartOf,omitempty"`
	RequiredClassifications []*Classification `json:"requiredClassifications,omitempty" yaml:"requiredClassifications,omitempty"`
	RequiredMaterials       []*Material       `json:"requiredMaterials,omitempty" yaml:"requiredMaterials,omitempty"`

	// Classification is the legacy singular form. Normalize folds it
	// into Classifications.
	Classification *LegacyClassification `json:"classification,omitempty" yaml:"classification,omitempty"`
}

// Requirement is one attribute, property, or quantity requirement.
type Requirement struct {
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Datatype      Datatype `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Presence      Presence `json:"presence,omitempty" yaml:"presence,omitempty"`
	AllowedValues []any    `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty"`
	Pattern       string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	URI           string   `json:"uri,omitempty" yaml:"uri,omitempty"`
	Instructions  string   `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// PartOf is a relationship facet targeting a containing IFC entity.
type PartOf struct {
	Entity         string `json:"entity,omitempty" yaml:"entity,omitempty"`
	PredefinedType string `json:"predefinedType,omitempty" yaml:"predefinedType,omitempty"`
	Relation       string `json:"relation,omitempty" yaml:"relation,omitempty"`
	Instructions   string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Classification is a classification-system facet.
type Classification struct {
	System       string `json:"system,omitempty" yaml:"system,omitempty"`
	Value        string `json:"value,omitempty" yaml:"value,omitempty"`
	URI          string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Material is a material facet. All fields are optional.
type Material struct {
	Value        string `json:"value,omitempty" yaml:"value,omitempty"`
	URI          string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// LegacyClassification is the pre-facet singular classification form.
type LegacyClassification struct {
	System string `json:"system,omitempty" yaml:"system,omitempty"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	URI    string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// Default returns the document an empty input parses to: IFC4, no rules.
// It is a parsing convenience, not a valid document; schema.Validate
// rejects it for having no rules.
func Default() *Document {
	return &Document{IDS: Spec{IFCVersion: IFC4, Rules: []*Rule{}}}
}
