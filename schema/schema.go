// Package schema exports JSON Schema documents for the entity payloads.
package schema

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/entities/extension"
	"github.com/KirkDiggler/rpg-entities/entities/monster"
	"github.com/KirkDiggler/rpg-entities/entities/spell"
	"github.com/KirkDiggler/rpg-entities/errors"
)

type enumSet interface {
	Strings() []string
}

func enumSchema(e enumSet) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string"}
	for _, code := range e.Strings() {
		s.Enum = append(s.Enum, code)
	}
	return s
}

var mapped = map[reflect.Type]func() *jsonschema.Schema{
	reflect.TypeFor[monster.Size]():          func() *jsonschema.Schema { return enumSchema(monster.Sizes) },
	reflect.TypeFor[spell.School]():          func() *jsonschema.Schema { return enumSchema(spell.Schools) },
	reflect.TypeFor[spell.RangeType]():       func() *jsonschema.Schema { return enumSchema(spell.RangeTypes) },
	reflect.TypeFor[spell.AreaEffectShape](): func() *jsonschema.Schema { return enumSchema(spell.AreaEffectShapes) },
	reflect.TypeFor[spell.ActivationUnit]():  func() *jsonschema.Schema { return enumSchema(spell.ActivationUnits) },
	reflect.TypeFor[spell.DurationUnit]():    func() *jsonschema.Schema { return enumSchema(spell.DurationUnits) },
	reflect.TypeFor[spell.DurationType]():    func() *jsonschema.Schema { return enumSchema(spell.DurationTypes) },
	// any JSON value
	reflect.TypeFor[extension.Value](): func() *jsonschema.Schema { return &jsonschema.Schema{} },
	// name to numeric modifier, in payload order
	reflect.TypeFor[monster.Modifiers](): func() *jsonschema.Schema {
		return &jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "number"}}
	},
}

func mapper(t reflect.Type) *jsonschema.Schema {
	if build, ok := mapped[t]; ok {
		return build()
	}
	return nil
}

func generate[T any](title, description string) *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     mapper,
	}
	var v T
	s := r.Reflect(v)
	s.Title = title
	s.Description = description
	return s
}

// Monster returns the schema of a monster payload
func Monster() *jsonschema.Schema {
	return generate[monster.Monster]("Monster", "Monster statblock")
}

// Spell returns the schema of a spell payload
func Spell() *jsonschema.Schema {
	return generate[spell.Spell]("Spell", "Spell definition")
}

// For returns the schema for an explicit entity kind
func For(kind codec.EntityKind) (*jsonschema.Schema, error) {
	switch kind {
	case codec.KindMonster:
		return Monster(), nil
	case codec.KindSpell:
		return Spell(), nil
	default:
		return nil, errors.InvalidArgumentf("no schema for entity kind %q", kind).
			WithMeta("allowed", []string{string(codec.KindMonster), string(codec.KindSpell)})
	}
}
