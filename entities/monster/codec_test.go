package monster_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/entities/extension"
	"github.com/KirkDiggler/rpg-entities/entities/monster"
	"github.com/KirkDiggler/rpg-entities/errors"
	"github.com/KirkDiggler/rpg-entities/internal/fixtures"
	"github.com/KirkDiggler/rpg-entities/internal/testutils/builders"
)

type CodecTestSuite struct {
	suite.Suite
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func modifierNames(mods *monster.Modifiers) []string {
	var names []string
	for pair := mods.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (s *CodecTestSuite) TestRequiredOnlyRoundTrip() {
	data := fixtures.MustLoad(fixtures.MonsterMinimal)

	m, err := monster.Decode(data)
	s.Require().NoError(err)
	s.Equal("Goblin", m.Name)
	s.Equal(8.0, m.Str)
	s.Equal(14.0, m.Dex)
	s.Equal("1/4", m.CR)
	s.Nil(m.Size)
	s.Nil(m.Speed)
	s.Nil(m.Tags)
	s.True(m.Data.IsZero())

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.JSONEq(string(data), string(out))

	var members map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(out, &members))
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	s.ElementsMatch(monster.RequiredFields, keys)
}

func (s *CodecTestSuite) TestDocumentedExampleIsIdempotent() {
	data := fixtures.MustLoad(fixtures.Monster)

	m, err := monster.Decode(data, codec.WithStrict())
	s.Require().NoError(err)

	first, err := monster.Encode(m)
	s.Require().NoError(err)
	s.JSONEq(string(data), string(first))

	var compact bytes.Buffer
	s.Require().NoError(json.Compact(&compact, data))
	s.Equal(compact.String(), string(first))
	s.Contains(string(first), `"skills":{"acrobatics":4,"animalHandling":2,"history":-1}`)
	s.Contains(string(first), `"savingThrows":{"str":3,"wis":4,"cha":-2}`)

	again, err := monster.Decode(first)
	s.Require().NoError(err)
	second, err := monster.Encode(again)
	s.Require().NoError(err)
	s.Equal(string(first), string(second))
}

func (s *CodecTestSuite) TestModifiersKeepPayloadOrder() {
	payload := `{"name":"Scout","str":11,"dex":14,"con":12,"int":11,"wis":13,"cha":11,` +
		`"skills":{"stealth":6,"nature":4,"perception":5},"savingThrows":{"wis":3,"dex":4},"cr":"1/2"}`

	m, err := monster.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)

	s.Equal([]string{"stealth", "nature", "perception"}, modifierNames(m.Skills))
	s.Equal([]string{"wis", "dex"}, modifierNames(m.SavingThrows))

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.Equal(payload, string(out))
}

func (s *CodecTestSuite) TestFractionalNumbers() {
	payload := `{"name":"Swarm","speed":{"walk":7.5},"str":7.5,"dex":13,"con":10,"int":1,"wis":7,"cha":2,` +
		`"cr":"1/2","senses":{"blindsight":2.5},"passivePerception":8.5,"page":12.5}`

	m, err := monster.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal(7.5, m.Str)
	s.Equal(7.5, *m.Speed.Walk)
	s.Equal(2.5, *m.Senses.Blindsight)
	s.Equal(8.5, *m.PassivePerception)
	s.Equal(12.5, *m.Page)

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.Equal(payload, string(out))
}

func (s *CodecTestSuite) TestNumbersAcceptedForTextFields() {
	payload := `{"name":404,"ac":15,"hp":7,"str":8,"dex":14,"con":10,"int":10,"wis":8,"cha":8,"cr":5,` +
		`"languages":[1],"traits":[{"name":1,"text":2}]}`

	m, err := monster.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal("404", m.Name)
	s.Equal("15", *m.AC)
	s.Equal("7", *m.HP)
	s.Equal("5", m.CR)
	s.Equal([]string{"1"}, m.Languages)
	s.Equal("1", *m.Traits[0].Name)
	s.Equal("2", *m.Traits[0].Text)
}

func (s *CodecTestSuite) TestDocumentedExampleFields() {
	m, err := monster.Decode(fixtures.MustLoad(fixtures.Monster))
	s.Require().NoError(err)

	s.Equal("8914a43d-5202-4000-a66e-ef66a220baf5", *m.ID)
	s.Equal("example-monster", *m.Slug)
	s.Equal(monster.SizeMedium, *m.Size)
	s.Equal("12 (leather armor)", *m.AC)
	s.Equal("11 (2d8 + 2)", *m.HP)
	s.Equal(60.0, *m.Speed.Hover)
	s.Equal("some other movement", *m.Speed.Other)
	s.Equal([]string{"acrobatics", "animalHandling", "history"}, modifierNames(m.Skills))
	history, ok := m.Skill("history")
	s.True(ok)
	s.Equal(-1.0, history)
	cha, ok := m.SavingThrow("cha")
	s.True(ok)
	s.Equal(-2.0, cha)
	_, ok = m.SavingThrow("dex")
	s.False(ok)
	s.Equal([]string{"cold", "fire", "Some custom damage"}, m.DamageImmunities)
	s.Equal(40.0, *m.Senses.Truesight)
	s.Equal(12.0, *m.PassivePerception)
	s.Equal(2.0, *m.Proficiency)
	s.Equal(42.0, *m.Page)
	s.Equal("test-monster-token.png", *m.Token)

	s.Require().Len(m.Traits, 2)
	s.Equal("Some Trait", *m.Traits[0].Name)
	s.Equal("", *m.Traits[1].Name)
	s.Equal("", *m.Traits[1].Text)

	s.Equal([]string{"customAttribute1", "customAttribute2", "customAttribute3"}, m.Data.Keys())
}

func (s *CodecTestSuite) TestMissingRequiredFields() {
	testCases := []struct {
		name    string
		payload string
		missing []string
	}{
		{
			name:    "empty object",
			payload: `{}`,
			missing: monster.RequiredFields,
		},
		{
			name:    "missing abilities and cr",
			payload: `{"name":"Goblin","str":8,"dex":14,"con":10}`,
			missing: []string{"int", "wis", "cha", "cr"},
		},
		{
			name:    "null counts as missing",
			payload: `{"name":null,"str":8,"dex":14,"con":10,"int":10,"wis":8,"cha":8,"cr":"1/4"}`,
			missing: []string{"name"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, err := monster.Decode([]byte(tc.payload))
			s.Error(err)
			s.Nil(m)
			s.True(errors.IsInvalidArgument(err))

			fields := errors.GetFields(err)
			s.Len(fields, len(tc.missing))
			for _, f := range tc.missing {
				s.Equal([]string{"is required"}, fields[f], f)
			}
		})
	}
}

func (s *CodecTestSuite) TestMalformedPayloads() {
	testCases := []struct {
		name    string
		payload string
		field   string
	}{
		{name: "not json", payload: `{"name":`},
		{name: "array", payload: `[]`},
		{name: "empty", payload: ``},
		{
			name:    "ability score as text",
			payload: `{"name":"Goblin","str":"eight","dex":14,"con":10,"int":10,"wis":8,"cha":8,"cr":"1/4"}`,
			field:   "str",
		},
		{
			name:    "speed as text",
			payload: `{"name":"Goblin","str":8,"dex":14,"con":10,"int":10,"wis":8,"cha":8,"cr":"1/4","speed":{"walk":"30 ft."}}`,
			field:   "speed.walk",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := monster.Decode([]byte(tc.payload))
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			if tc.field != "" {
				s.Contains(errors.GetFields(err), tc.field)
			}
		})
	}
}

func (s *CodecTestSuite) TestUnknownFieldsAreIgnored() {
	payload := `{"name":"Goblin","str":8,"dex":14,"con":10,"int":10,"wis":8,"cha":8,"cr":"1/4","lairActions":[{"name":"x"}],"xp":50}`

	m, err := monster.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal("Goblin", m.Name)
}

func (s *CodecTestSuite) TestSizeDecoding() {
	base := `{"name":"Imp","str":6,"dex":17,"con":13,"int":11,"wis":12,"cha":14,"cr":"1","size":%q}`

	for _, code := range monster.Sizes.Codes() {
		s.Run("accepts "+string(code), func() {
			m, err := monster.Decode([]byte(fmt.Sprintf(base, string(code))), codec.WithStrict())
			s.Require().NoError(err)
			s.Equal(code, *m.Size)
		})
	}

	s.Run("lenient keeps unknown size", func() {
		m, err := monster.Decode([]byte(fmt.Sprintf(base, "tiny")))
		s.Require().NoError(err)
		s.Equal(monster.Size("tiny"), *m.Size)

		out, err := monster.Encode(m)
		s.Require().NoError(err)
		s.Contains(string(out), `"size":"tiny"`)
	})

	for _, raw := range []string{"tiny", "X", "m", ""} {
		s.Run("strict rejects "+raw, func() {
			_, err := monster.Decode([]byte(fmt.Sprintf(base, raw)), codec.WithStrict())
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.GetFields(err), "size")
		})
	}
}

func (s *CodecTestSuite) TestOpenSetsAcceptAnyString() {
	payload := `{"name":"Mimic","str":17,"dex":12,"con":15,"int":5,"wis":13,"cha":8,"cr":"2",
		"damageImmunities":["acid","Psychic damage from dreams"],
		"damageVulnerabilities":["thunder (only when wet)"],
		"damageResistances":["Bludgeoning, Piercing, and slashing from nonmagical attacks"],
		"conditionImmunities":["prone","bored"],
		"languages":["understands Common but can't speak"],
		"environments":["underdark","tavern cellars"],
		"tags":["shapechanger","🪤"]}`

	m, err := monster.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal([]string{"prone", "bored"}, m.ConditionImmunities)
	s.Equal([]string{"shapechanger", "🪤"}, m.Tags)

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.JSONEq(payload, string(out))
}

func (s *CodecTestSuite) TestEmptyListsStayPresent() {
	payload := `{"name":"Ooze","str":1,"dex":1,"con":1,"int":1,"wis":1,"cha":1,"cr":"0","tags":[],"traits":[],"skills":{}}`

	m, err := monster.Decode([]byte(payload))
	s.Require().NoError(err)
	s.NotNil(m.Tags)
	s.Empty(m.Tags)

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.JSONEq(payload, string(out))
}

func (s *CodecTestSuite) TestExtensionDataRoundTrip() {
	payload := `{"name":"Lich","str":11,"dex":16,"con":16,"int":20,"wis":14,"cha":16,"cr":"21",
		"data":{"phylactery":{"hidden":true,"location":null,"wards":[1,2.50,"three",{"deep":[[]]}]},"score":1e3}}`

	m, err := monster.Decode([]byte(payload))
	s.Require().NoError(err)
	s.Equal(extension.KindObject, m.Data.Kind())

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.JSONEq(payload, string(out))
	s.Contains(string(out), `"wards":[1,2.50,"three",{"deep":[[]]}]`)
	s.Contains(string(out), `"score":1e3`)
}

func (s *CodecTestSuite) TestExtensionDataNull() {
	payload := `{"name":"Lich","str":11,"dex":16,"con":16,"int":20,"wis":14,"cha":16,"cr":"21","data":null}`

	m, err := monster.Decode([]byte(payload))
	s.Require().NoError(err)
	s.True(m.Data.IsNull())

	out, err := monster.Encode(m)
	s.Require().NoError(err)
	s.Contains(string(out), `"data":null`)
}

func (s *CodecTestSuite) TestYAMLPayload() {
	data, err := codec.YAMLToJSON(fixtures.MustLoad(fixtures.MonsterYAML))
	s.Require().NoError(err)

	m, err := monster.Decode(data, codec.WithStrict())
	s.Require().NoError(err)
	s.Equal("Goblin Boss", m.Name)
	s.Equal(monster.SizeSmall, *m.Size)
	s.Equal("1", m.CR)
	s.Equal("17", *m.AC)
	s.Equal(60.0, *m.Senses.Darkvision)
	stealth, ok := m.Skill("stealth")
	s.True(ok)
	s.Equal(6.0, stealth)
	s.Equal([]string{"zeta", "alpha"}, m.Data.Keys())
	s.Require().Len(m.Actions, 1)
	s.Equal("Multiattack", *m.Actions[0].Name)
}

func (s *CodecTestSuite) TestYAMLUnquotedNumbersForText() {
	data, err := codec.YAMLToJSON([]byte("name: Ogre Zombie\nac: 15\nhp: 7\nstr: 19\ndex: 6\ncon: 18\nint: 3\nwis: 6\ncha: 5\ncr: 5\n"))
	s.Require().NoError(err)

	m, err := monster.Decode(data, codec.WithStrict())
	s.Require().NoError(err)
	s.Equal("5", m.CR)
	s.Equal("15", *m.AC)
	s.Equal("7", *m.HP)
	s.Equal(19.0, m.Str)
}

func (s *CodecTestSuite) TestEncodeNil() {
	_, err := monster.Encode(nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = monster.EncodeIndent(nil, "", "  ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestEncodeIndent() {
	m := builders.NewMonsterBuilder().
		WithName("Rat").
		WithAbilities(2, 11, 9, 2, 10, 4).
		WithCR("0").
		Build()

	out, err := monster.EncodeIndent(m, "", "  ")
	s.Require().NoError(err)
	s.Equal(`{
  "name": "Rat",
  "str": 2,
  "dex": 11,
  "con": 9,
  "int": 2,
  "wis": 10,
  "cha": 4,
  "cr": "0"
}`, string(out))
}

func (s *CodecTestSuite) TestBuiltMonsterRoundTrip() {
	m := builders.NewMonsterBuilder().
		WithSize(monster.SizeSmall).
		WithType("humanoid (goblinoid)").
		WithWalk(30).
		WithDamageImmunities("psychic", "cheese").
		WithTrait("Nimble Escape", "The goblin can take the Disengage or Hide action as a bonus action.").
		WithAction("Scimitar", "*Melee Weapon Attack:* +4 to hit").
		WithAction("Shortbow", "*Ranged Weapon Attack:* +4 to hit").
		Build()

	data, err := monster.Encode(m)
	s.Require().NoError(err)

	decoded, err := monster.Decode(data, codec.WithStrict())
	s.Require().NoError(err)
	s.Equal(m, decoded)
}
