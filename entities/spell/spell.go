// Package spell defines the spell schema.
package spell

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-entities/entities/extension"
)

// Spell is a spell definition. Name and components are required; every
// other field is optional and nil when absent. Numeric fields accept
// fractional values.
type Spell struct {
	ID   *string `json:"id,omitzero" jsonschema_description:"Unique identifier, usually a UUID. Generated by the game system when missing."`
	Name string  `json:"name" jsonschema:"required" jsonschema_description:"Spell name."`
	Slug *string `json:"slug,omitzero" jsonschema_description:"Link reference such as fire-bolt. Generated from name when missing."`

	Level  *float64 `json:"level,omitzero" jsonschema_description:"Spell level. Defaults to 0 (cantrip)."`
	School *School  `json:"school,omitzero" jsonschema_description:"School of magic."`

	Range           *float64         `json:"range,omitzero" jsonschema_description:"Range, typically in feet."`
	RangeType       *RangeType       `json:"rangeType,omitzero" jsonschema_description:"Range type. Defaults to range."`
	AreaEffectShape *AreaEffectShape `json:"areaEffectShape,omitzero" jsonschema_description:"Shape of the area of effect."`
	AreaEffectSize  *float64         `json:"areaEffectSize,omitzero" jsonschema_description:"Size of the area of effect."`

	Activation          *float64        `json:"activation,omitzero" jsonschema_description:"Casting time amount."`
	ActivationUnit      *ActivationUnit `json:"activationUnit,omitzero" jsonschema_description:"Casting time unit."`
	ActivationCondition *string         `json:"activationCondition,omitzero" jsonschema_description:"Trigger for reaction spells."`

	Components       []string `json:"components" jsonschema:"required" jsonschema_description:"Component codes such as V, S and M. The game system may add more."`
	ComponentsDetail *string  `json:"componentsDetail,omitzero" jsonschema_description:"Material component detail."`

	Duration     *float64      `json:"duration,omitzero" jsonschema_description:"Duration amount."`
	DurationUnit *DurationUnit `json:"durationUnit,omitzero" jsonschema_description:"Duration unit."`
	DurationType *DurationType `json:"durationType,omitzero" jsonschema_description:"Duration type. Defaults to instantaneous."`

	Ritual  *bool    `json:"ritual,omitzero" jsonschema_description:"Can be cast as a ritual."`
	Classes []string `json:"classes,omitzero" jsonschema_description:"Classes with access to the spell. Custom values are allowed."`

	Source *string  `json:"source,omitzero" jsonschema_description:"Source book code, e.g. PHB."`
	Page   *float64 `json:"page,omitzero" jsonschema_description:"Page in the source."`
	Link   *string  `json:"link,omitzero" jsonschema_description:"Link (URL)."`

	Tags  []string `json:"tags,omitzero" jsonschema_description:"Tags."`
	Descr *string  `json:"descr,omitzero" jsonschema_description:"Description. Markdown (GFM) is supported."`
	Notes *string  `json:"notes,omitzero" jsonschema_description:"Notes for the game master. Markdown (GFM) is supported."`

	Data       extension.Value `json:"data,omitzero" jsonschema_description:"Custom data defined by the consumer."`
	Attributes extension.Value `json:"attributes,omitzero" jsonschema_description:"Custom attributes defined by the consumer."`
	Image      *string         `json:"image,omitzero" jsonschema_description:"Artwork filename or URL."`
}

// RequiredFields lists the payload keys every spell must carry
var RequiredFields = []string{"name", "components"}

// spellJSON has the same fields as Spell without its methods
type spellJSON Spell

// MarshalJSON always writes components, as [] when none are set
func (s Spell) MarshalJSON() ([]byte, error) {
	out := spellJSON(s)
	if out.Components == nil {
		out.Components = []string{}
	}
	return json.Marshal(out)
}

// LevelOrDefault returns the level, or 0 when none is set
func (s *Spell) LevelOrDefault() float64 {
	if s.Level == nil {
		return 0
	}
	return *s.Level
}

// IsCantrip reports whether the spell is level 0, explicitly or by default
func (s *Spell) IsCantrip() bool {
	return s.LevelOrDefault() == 0
}

// RangeTypeOrDefault returns the range type, or DefaultRangeType
func (s *Spell) RangeTypeOrDefault() RangeType {
	if s.RangeType == nil {
		return DefaultRangeType
	}
	return *s.RangeType
}

// DurationTypeOrDefault returns the duration type, or DefaultDurationType
func (s *Spell) DurationTypeOrDefault() DurationType {
	if s.DurationType == nil {
		return DefaultDurationType
	}
	return *s.DurationType
}
