package spell

import "github.com/KirkDiggler/rpg-entities/entities/codec"

// School is the school of magic, written as its abbreviation
type School string

// Schools of magic
const (
	SchoolAbjuration    School = "A"
	SchoolConjuration   School = "C"
	SchoolDivination    School = "D"
	SchoolEnchantment   School = "EN"
	SchoolEvocation     School = "EV"
	SchoolIllusion      School = "I"
	SchoolNecromancy    School = "N"
	SchoolTransmutation School = "T"
)

// Schools is the closed set of schools
var Schools = codec.NewEnum("school",
	[]School{
		SchoolAbjuration, SchoolConjuration, SchoolDivination, SchoolEnchantment,
		SchoolEvocation, SchoolIllusion, SchoolNecromancy, SchoolTransmutation,
	},
	map[School]string{
		SchoolAbjuration:    "abjuration",
		SchoolConjuration:   "conjuration",
		SchoolDivination:    "divination",
		SchoolEnchantment:   "enchantment",
		SchoolEvocation:     "evocation",
		SchoolIllusion:      "illusion",
		SchoolNecromancy:    "necromancy",
		SchoolTransmutation: "transmutation",
	},
)

// ParseSchool accepts an abbreviation such as "EV" or a name such as "evocation"
func ParseSchool(raw string) (School, error) {
	return Schools.Parse(raw)
}

// String returns the abbreviation
func (s School) String() string { return string(s) }

// Name returns the long name, e.g. evocation
func (s School) Name() string { return Schools.Name(s) }

// RangeType qualifies how Range is measured
type RangeType string

// Range types
const (
	RangeTypeSelf      RangeType = "self"
	RangeTypeTouch     RangeType = "touch"
	RangeTypeRange     RangeType = "range"
	RangeTypeSight     RangeType = "sight"
	RangeTypeUnlimited RangeType = "unlimited"
)

// DefaultRangeType applies when a spell has no range type
const DefaultRangeType = RangeTypeRange

// RangeTypes is the closed set of range types
var RangeTypes = codec.NewEnum("rangeType",
	[]RangeType{RangeTypeSelf, RangeTypeTouch, RangeTypeRange, RangeTypeSight, RangeTypeUnlimited},
	nil,
)

// ParseRangeType accepts a range type in any letter case
func ParseRangeType(raw string) (RangeType, error) {
	return RangeTypes.Parse(raw)
}

// AreaEffectShape is the shape of a spell's area of effect
type AreaEffectShape string

// Area of effect shapes
const (
	AreaEffectCone     AreaEffectShape = "cone"
	AreaEffectCube     AreaEffectShape = "cube"
	AreaEffectCylinder AreaEffectShape = "cylinder"
	AreaEffectLine     AreaEffectShape = "line"
	AreaEffectSphere   AreaEffectShape = "sphere"
)

// AreaEffectShapes is the closed set of area shapes
var AreaEffectShapes = codec.NewEnum("areaEffectShape",
	[]AreaEffectShape{AreaEffectCone, AreaEffectCube, AreaEffectCylinder, AreaEffectLine, AreaEffectSphere},
	nil,
)

// ParseAreaEffectShape accepts a shape in any letter case
func ParseAreaEffectShape(raw string) (AreaEffectShape, error) {
	return AreaEffectShapes.Parse(raw)
}

// ActivationUnit is the unit of the casting time
type ActivationUnit string

// Casting time units
const (
	ActivationAction      ActivationUnit = "action"
	ActivationBonusAction ActivationUnit = "bonusActions"
	ActivationReaction    ActivationUnit = "reaction"
	ActivationHour        ActivationUnit = "hour"
	ActivationMinute      ActivationUnit = "minute"
)

// ActivationUnits is the closed set of casting time units
var ActivationUnits = codec.NewEnum("activationUnit",
	[]ActivationUnit{ActivationAction, ActivationBonusAction, ActivationReaction, ActivationHour, ActivationMinute},
	map[ActivationUnit]string{
		ActivationBonusAction: "bonus action",
	},
)

// ParseActivationUnit accepts a unit such as "bonusActions" or its name "bonus action"
func ParseActivationUnit(raw string) (ActivationUnit, error) {
	return ActivationUnits.Parse(raw)
}

// DurationUnit is the unit of Duration
type DurationUnit string

// Duration units
const (
	DurationRound  DurationUnit = "round"
	DurationMinute DurationUnit = "minute"
	DurationHour   DurationUnit = "hour"
	DurationDay    DurationUnit = "day"
)

// DurationUnits is the closed set of duration units
var DurationUnits = codec.NewEnum("durationUnit",
	[]DurationUnit{DurationRound, DurationMinute, DurationHour, DurationDay},
	nil,
)

// ParseDurationUnit accepts a duration unit in any letter case
func ParseDurationUnit(raw string) (DurationUnit, error) {
	return DurationUnits.Parse(raw)
}

// DurationType describes how long a spell lasts
type DurationType string

// Duration types
const (
	DurationConcentration   DurationType = "concentration"
	DurationInstantaneous   DurationType = "instantaneous"
	DurationTime            DurationType = "time"
	DurationSpecial         DurationType = "special"
	DurationDispel          DurationType = "dispel"
	DurationDispelOrTrigger DurationType = "dispelOrTrigger"
)

// DefaultDurationType applies when a spell has no duration type
const DefaultDurationType = DurationInstantaneous

// DurationTypes is the closed set of duration types
var DurationTypes = codec.NewEnum("durationType",
	[]DurationType{
		DurationConcentration, DurationInstantaneous, DurationTime,
		DurationSpecial, DurationDispel, DurationDispelOrTrigger,
	},
	map[DurationType]string{
		DurationDispelOrTrigger: "dispel or trigger",
	},
)

// ParseDurationType accepts a type such as "dispelOrTrigger" or its name "dispel or trigger"
func ParseDurationType(raw string) (DurationType, error) {
	return DurationTypes.Parse(raw)
}
