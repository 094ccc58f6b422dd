package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IFC defined types emitted on property and attribute requirements.
const (
	IFCLabel                       = "IFCLABEL"
	IFCBoolean                     = "IFCBOOLEAN"
	IFCInteger                     = "IFCINTEGER"
	IFCReal                        = "IFCREAL"
	IFCLengthMeasure               = "IFCLENGTHMEASURE"
	IFCAreaMeasure                 = "IFCAREAMEASURE"
	IFCVolumeMeasure               = "IFCVOLUMEMEASURE"
	IFCCountMeasure                = "IFCCOUNTMEASURE"
	IFCThermalTransmittanceMeasure = "IFCTHERMALTRANSMITTANCEMEASURE"
	IFCVolumetricFlowRateMeasure   = "IFCVOLUMETRICFLOWRATEMEASURE"
	IFCPowerMeasure                = "IFCPOWERMEASURE"
	IFCElectricVoltageMeasure      = "IFCELECTRICVOLTAGEMEASURE"
	IFCDate                        = "IFCDATE"
	IFCDatetime                    = "IFCDATETIME"
	IFCTime                        = "IFCTIME"
)

var ifcTypes = map[Datatype]string{
	DatatypeBoolean:              IFCBoolean,
	DatatypeInteger:              IFCInteger,
	DatatypeNumber:               IFCReal,
	DatatypeLength:               IFCLengthMeasure,
	DatatypeArea:                 IFCAreaMeasure,
	DatatypeVolume:               IFCVolumeMeasure,
	DatatypeCount:                IFCCountMeasure,
	DatatypeThermalTransmittance: IFCThermalTransmittanceMeasure,
	DatatypeVolumetricFlowRate:   IFCVolumetricFlowRateMeasure,
	DatatypePower:                IFCPowerMeasure,
	DatatypeElectricVoltage:      IFCElectricVoltageMeasure,
	DatatypeDate:                 IFCDate,
	DatatypeDatetime:             IFCDatetime,
	DatatypeTime:                 IFCTime,
}

// ToIFCType maps a simplified datatype to its IFC defined type.
//
// An unset datatype resolves to IFCLABEL. A declared "string" datatype is
// overridden to IFCTHERMALTRANSMITTANCEMEASURE when the base property
// name contains "thermaltransmittance" (case-insensitively). The override
// is intentionally narrow: it applies to this one substring only, and only
// when a datatype was declared.
func ToIFCType(dt Datatype, base string) string {
	if dt == "" {
		return IFCLabel
	}
	if dt == DatatypeString {
		if strings.Contains(strings.ToLower(base), string(DatatypeThermalTransmittance)) {
			return IFCThermalTransmittanceMeasure
		}
		return IFCLabel
	}
	if t, ok := ifcTypes[dt]; ok {
		return t
	}
	return IFCLabel
}

var xsdBases = map[string]string{
	IFCBoolean:       "xs:boolean",
	IFCInteger:       "xs:integer",
	IFCReal:          "xs:double",
	IFCLengthMeasure: "xs:double",
	IFCAreaMeasure:   "xs:double",
	IFCVolumeMeasure: "xs:double",
	IFCCountMeasure:  "xs:double",
	IFCDate:          "xs:date",
	IFCDatetime:      "xs:dateTime",
	IFCTime:          "xs:time",
}

// XSDBase maps an IFC defined type to the XML Schema base type used in
// value restrictions. Unmapped types restrict over xs:string.
func XSDBase(ifcType string) string {
	if b, ok := xsdBases[ifcType]; ok {
		return b
	}
	return "xs:string"
}

// Cardinality maps a presence to the IDS cardinality attribute value.
// Absent presence behaves as required.
func (p Presence) Cardinality() string {
	if p == "" {
		return string(PresenceRequired)
	}
	return string(p)
}

// GuessMeasure infers a quantity's datatype from its base name when no
// datatype was declared: width/thickness/length imply a length measure,
// area and volume their respective measures, anything else a plain number.
func GuessMeasure(base string) Datatype {
	b := strings.ToLower(base)
	switch {
	case strings.Contains(b, "width"), strings.Contains(b, "thickness"), strings.Contains(b, "length"):
		return DatatypeLength
	case strings.Contains(b, "area"):
		return DatatypeArea
	case strings.Contains(b, "volume"):
		return DatatypeVolume
	}
	return DatatypeNumber
}

// SplitName splits a dotted requirement name into property set and base
// name. A name with no dot falls back to the Pset_Common property set.
func SplitName(full string) (pset, base string) {
	pset, base, ok := strings.Cut(full, ".")
	if !ok {
		return "Pset_Common", full
	}
	return pset, base
}

// Relations lists the known IFC relationship names accepted on partOf
// facets. The converter passes any relation string through; this table
// only bounds what the schema accepts.
func Relations() []string {
	return []string{
		"IFCRELAGGREGATES",
		"IFCRELASSIGNSTOGROUP",
		"IFCRELCONTAINEDINSPATIALSTRUCTURE",
		"IFCRELNESTS",
		"IFCRELVOIDSELEMENT IFCRELFILLSELEMENT",
	}
}

// ScalarString renders an allowed_values literal the way it appears in
// the XML enumeration: strings as-is, booleans as true/false, numbers
// without exponent formatting where possible.
func ScalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
