// Package builders provides test data builders for monsters and spells
package builders

import (
	"github.com/KirkDiggler/rpg-entities/entities/extension"
	"github.com/KirkDiggler/rpg-entities/entities/monster"
)

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	monster *monster.Monster
}

// NewMonsterBuilder creates a builder for a goblin with only the required fields set
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &monster.Monster{
			Name: "Goblin",
			Str:  8,
			Dex:  14,
			Con:  10,
			Int:  10,
			Wis:  8,
			Cha:  8,
			CR:   "1/4",
		},
	}
}

// WithName sets the name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithAbilities sets all six ability scores in str, dex, con, int, wis, cha order
func (b *MonsterBuilder) WithAbilities(str, dex, con, intel, wis, cha float64) *MonsterBuilder {
	b.monster.Str = str
	b.monster.Dex = dex
	b.monster.Con = con
	b.monster.Int = intel
	b.monster.Wis = wis
	b.monster.Cha = cha
	return b
}

// WithCR sets the challenge rating
func (b *MonsterBuilder) WithCR(cr string) *MonsterBuilder {
	b.monster.CR = cr
	return b
}

// WithSize sets the size
func (b *MonsterBuilder) WithSize(size monster.Size) *MonsterBuilder {
	b.monster.Size = &size
	return b
}

// WithType sets the creature type
func (b *MonsterBuilder) WithType(t string) *MonsterBuilder {
	b.monster.Type = &t
	return b
}

// WithWalk sets the walking speed, keeping other speeds
func (b *MonsterBuilder) WithWalk(feet float64) *MonsterBuilder {
	if b.monster.Speed == nil {
		b.monster.Speed = &monster.Movement{}
	}
	b.monster.Speed.Walk = &feet
	return b
}

// WithSkill adds or replaces a skill modifier, keeping insertion order
func (b *MonsterBuilder) WithSkill(name string, mod float64) *MonsterBuilder {
	if b.monster.Skills == nil {
		b.monster.Skills = monster.NewModifiers()
	}
	b.monster.Skills.Set(name, mod)
	return b
}

// WithSavingThrow adds or replaces a saving throw modifier
func (b *MonsterBuilder) WithSavingThrow(ability string, mod float64) *MonsterBuilder {
	if b.monster.SavingThrows == nil {
		b.monster.SavingThrows = monster.NewModifiers()
	}
	b.monster.SavingThrows.Set(ability, mod)
	return b
}

// WithDamageImmunities appends damage immunities
func (b *MonsterBuilder) WithDamageImmunities(types ...string) *MonsterBuilder {
	b.monster.DamageImmunities = append(b.monster.DamageImmunities, types...)
	return b
}

// WithAction appends an action
func (b *MonsterBuilder) WithAction(name, text string) *MonsterBuilder {
	b.monster.Actions = append(b.monster.Actions, monster.NewFeature(name, text))
	return b
}

// WithTrait appends a trait
func (b *MonsterBuilder) WithTrait(name, text string) *MonsterBuilder {
	b.monster.Traits = append(b.monster.Traits, monster.NewFeature(name, text))
	return b
}

// WithData sets the extension data
func (b *MonsterBuilder) WithData(members ...extension.Member) *MonsterBuilder {
	b.monster.Data = extension.Object(members...)
	return b
}

// Build returns the built monster
func (b *MonsterBuilder) Build() *monster.Monster {
	return b.monster
}
