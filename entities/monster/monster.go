// Package monster defines the monster statblock schema.
package monster

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KirkDiggler/rpg-entities/entities/extension"
)

// Monster is a creature statblock. Name, the six ability scores and CR are
// required; every other field is optional and nil when absent. Numeric
// fields accept fractional values.
type Monster struct {
	ID        *string   `json:"id,omitzero" jsonschema_description:"Unique identifier, usually a UUID. Generated by the game system when missing."`
	Kind      *string   `json:"kind,omitzero" jsonschema_description:"Entity kind as defined by the game system, e.g. npc."`
	Name      string    `json:"name" jsonschema:"required" jsonschema_description:"Entity name."`
	Slug      *string   `json:"slug,omitzero" jsonschema_description:"Link reference such as adult-dragon. Generated from name when missing."`
	Size      *Size     `json:"size,omitzero" jsonschema_description:"Creature size. Defaults to M (medium)."`
	Type      *string   `json:"type,omitzero" jsonschema_description:"Type and optional subtype, e.g. fiend (demon)."`
	Alignment *string   `json:"alignment,omitzero" jsonschema_description:"Free-text alignment."`
	AC        *string   `json:"ac,omitzero" jsonschema_description:"Armor Class. Number or number with a type, e.g. 12 (leather armor)."`
	HP        *string   `json:"hp,omitzero" jsonschema_description:"Hit Points. Number or number with a dice formula, e.g. 11 (2d8 + 2)."`
	Speed     *Movement `json:"speed,omitzero" jsonschema_description:"Movement speeds."`

	Str float64 `json:"str" jsonschema:"required" jsonschema_description:"Strength."`
	Dex float64 `json:"dex" jsonschema:"required" jsonschema_description:"Dexterity."`
	Con float64 `json:"con" jsonschema:"required" jsonschema_description:"Constitution."`
	Int float64 `json:"int" jsonschema:"required" jsonschema_description:"Intellect."`
	Wis float64 `json:"wis" jsonschema:"required" jsonschema_description:"Wisdom."`
	Cha float64 `json:"cha" jsonschema:"required" jsonschema_description:"Charisma."`

	Skills                *Modifiers `json:"skills,omitzero" jsonschema_description:"Skill name to skill modifier, in display order."`
	SavingThrows          *Modifiers `json:"savingThrows,omitzero" jsonschema_description:"Ability name to saving throw modifier, in display order."`
	DamageImmunities      []string   `json:"damageImmunities,omitzero" jsonschema_description:"Damage types. Custom values are allowed."`
	DamageVulnerabilities []string   `json:"damageVulnerabilities,omitzero" jsonschema_description:"Damage types. Custom values are allowed."`
	DamageResistances     []string   `json:"damageResistances,omitzero" jsonschema_description:"Damage types. Custom values are allowed."`
	ConditionImmunities   []string   `json:"conditionImmunities,omitzero" jsonschema_description:"Condition types. Custom values are allowed."`

	CR string `json:"cr" jsonschema:"required" jsonschema_description:"Challenge Rating, an integer or fraction such as 1/4."`

	Senses            *Senses  `json:"senses,omitzero" jsonschema_description:"Senses and their ranges."`
	PassivePerception *float64 `json:"passivePerception,omitzero" jsonschema_description:"Passive Perception."`
	PassiveInsight    *float64 `json:"passiveInsight,omitzero" jsonschema_description:"Passive Insight."`
	Initiative        *float64 `json:"initiative,omitzero" jsonschema_description:"Initiative modifier. The DEX modifier is used when empty."`
	Proficiency       *float64 `json:"proficiency,omitzero" jsonschema_description:"Proficiency bonus. Calculated by the game system when empty."`

	Languages    []string `json:"languages,omitzero" jsonschema_description:"Languages. Custom values are allowed."`
	Environments []string `json:"environments,omitzero" jsonschema_description:"Environments. Custom values are allowed."`

	Traits           []Feature `json:"traits,omitzero" jsonschema_description:"Traits, in display order."`
	Actions          []Feature `json:"actions,omitzero" jsonschema_description:"Actions, in display order."`
	Reactions        []Feature `json:"reactions,omitzero" jsonschema_description:"Reactions, in display order."`
	LegendaryActions []Feature `json:"legendaryActions,omitzero" jsonschema_description:"Legendary actions, in display order."`
	BonusActions     []Feature `json:"bonusActions,omitzero" jsonschema_description:"Bonus actions, in display order."`
	MythicActions    []Feature `json:"mythicActions,omitzero" jsonschema_description:"Mythic actions, in display order."`

	Source *string  `json:"source,omitzero" jsonschema_description:"Source book code, e.g. MM."`
	Page   *float64 `json:"page,omitzero" jsonschema_description:"Page in the source."`
	Link   *string  `json:"link,omitzero" jsonschema_description:"Link (URL)."`

	Tags  []string        `json:"tags,omitzero" jsonschema_description:"Tags."`
	Data  extension.Value `json:"data,omitzero" jsonschema_description:"Custom data defined by the consumer."`
	Image *string         `json:"image,omitzero" jsonschema_description:"Artwork filename or URL."`
	Token *string         `json:"token,omitzero" jsonschema_description:"Token image filename or URL."`
	Descr *string         `json:"descr,omitzero" jsonschema_description:"Description. Markdown (GFM) is supported."`
}

// Modifiers maps names to modifiers and keeps payload order
type Modifiers = orderedmap.OrderedMap[string, float64]

// Modifier is one named entry of Modifiers
type Modifier struct {
	Name  string
	Value float64
}

// NewModifiers builds Modifiers holding mods in the given order
func NewModifiers(mods ...Modifier) *Modifiers {
	out := orderedmap.New[string, float64]()
	for _, mod := range mods {
		out.Set(mod.Name, mod.Value)
	}
	return out
}

// Feature is a named block of statblock prose such as a trait or an action
type Feature struct {
	Name *string `json:"name,omitzero"`
	Text *string `json:"text,omitzero" jsonschema_description:"Feature text. Markdown (GFM) is supported."`
}

// Movement holds speeds, typically in feet
type Movement struct {
	Burrow *float64 `json:"burrow,omitzero"`
	Climb  *float64 `json:"climb,omitzero"`
	Fly    *float64 `json:"fly,omitzero"`
	Swim   *float64 `json:"swim,omitzero"`
	Walk   *float64 `json:"walk,omitzero"`
	Hover  *float64 `json:"hover,omitzero"`
	Other  *string  `json:"other,omitzero"`
}

// Senses holds sense ranges in feet
type Senses struct {
	Darkvision  *float64 `json:"darkvision,omitzero"`
	Blindsight  *float64 `json:"blindsight,omitzero"`
	Tremorsense *float64 `json:"tremorsense,omitzero"`
	Truesight   *float64 `json:"truesight,omitzero"`
	Other       *string  `json:"other,omitzero"`
}

// RequiredFields lists the payload keys every monster must carry
var RequiredFields = []string{"name", "str", "dex", "con", "int", "wis", "cha", "cr"}

// NewFeature builds a Feature with both name and text set
func NewFeature(name, text string) Feature {
	return Feature{Name: &name, Text: &text}
}

// SizeOrDefault returns the size, or DefaultSize when none is set. The
// monster itself is not changed.
func (m *Monster) SizeOrDefault() Size {
	if m.Size == nil {
		return DefaultSize
	}
	return *m.Size
}

// Skill returns the modifier for a skill when one is listed
func (m *Monster) Skill(name string) (float64, bool) {
	if m.Skills == nil {
		return 0, false
	}
	return m.Skills.Get(name)
}

// SavingThrow returns the saving throw modifier for an ability when one is listed
func (m *Monster) SavingThrow(ability string) (float64, bool) {
	if m.SavingThrows == nil {
		return 0, false
	}
	return m.SavingThrows.Get(ability)
}

// FeatureGroups returns every feature list keyed by payload name, including
// empty ones, so renderers can walk them in a fixed order
func (m *Monster) FeatureGroups() []FeatureGroup {
	return []FeatureGroup{
		{Field: "traits", Features: m.Traits},
		{Field: "actions", Features: m.Actions},
		{Field: "reactions", Features: m.Reactions},
		{Field: "legendaryActions", Features: m.LegendaryActions},
		{Field: "bonusActions", Features: m.BonusActions},
		{Field: "mythicActions", Features: m.MythicActions},
	}
}

// FeatureGroup is one named list of features
type FeatureGroup struct {
	Field    string
	Features []Feature
}
