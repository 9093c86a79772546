package builders

import (
	"github.com/KirkDiggler/rpg-entities/entities/extension"
	"github.com/KirkDiggler/rpg-entities/entities/spell"
)

// SpellBuilder provides a fluent interface for building test Spell instances
type SpellBuilder struct {
	spell *spell.Spell
}

// NewSpellBuilder creates a builder for a verbal and somatic spell with no level
func NewSpellBuilder() *SpellBuilder {
	return &SpellBuilder{
		spell: &spell.Spell{
			Name:       "Fire Bolt",
			Components: []string{"V", "S"},
		},
	}
}

// WithName sets the name
func (b *SpellBuilder) WithName(name string) *SpellBuilder {
	b.spell.Name = name
	return b
}

// WithLevel sets the level; 0 is stored, not treated as unset
func (b *SpellBuilder) WithLevel(level float64) *SpellBuilder {
	b.spell.Level = &level
	return b
}

// WithSchool sets the school
func (b *SpellBuilder) WithSchool(school spell.School) *SpellBuilder {
	b.spell.School = &school
	return b
}

// WithComponents replaces the components
func (b *SpellBuilder) WithComponents(components ...string) *SpellBuilder {
	b.spell.Components = components
	return b
}

// WithRange sets range and range type together
func (b *SpellBuilder) WithRange(feet float64, rangeType spell.RangeType) *SpellBuilder {
	b.spell.Range = &feet
	b.spell.RangeType = &rangeType
	return b
}

// WithDuration sets the duration amount, unit and type
func (b *SpellBuilder) WithDuration(amount float64, unit spell.DurationUnit, durationType spell.DurationType) *SpellBuilder {
	b.spell.Duration = &amount
	b.spell.DurationUnit = &unit
	b.spell.DurationType = &durationType
	return b
}

// WithReaction makes the spell a reaction with a trigger
func (b *SpellBuilder) WithReaction(condition string) *SpellBuilder {
	one := 1.0
	unit := spell.ActivationReaction
	b.spell.Activation = &one
	b.spell.ActivationUnit = &unit
	b.spell.ActivationCondition = &condition
	return b
}

// WithRitual marks the spell as a ritual
func (b *SpellBuilder) WithRitual() *SpellBuilder {
	ritual := true
	b.spell.Ritual = &ritual
	return b
}

// WithClasses appends classes
func (b *SpellBuilder) WithClasses(classes ...string) *SpellBuilder {
	b.spell.Classes = append(b.spell.Classes, classes...)
	return b
}

// WithAttributes sets the extension attributes
func (b *SpellBuilder) WithAttributes(members ...extension.Member) *SpellBuilder {
	b.spell.Attributes = extension.Object(members...)
	return b
}

// Build returns the built spell
func (b *SpellBuilder) Build() *spell.Spell {
	return b.spell
}
