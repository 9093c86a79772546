package spell_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/entities/extension"
	"github.com/KirkDiggler/rpg-entities/entities/spell"
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

func (s *CodecTestSuite) TestDocumentedExampleIsIdempotent() {
	data := fixtures.MustLoad(fixtures.Spell)

	sp, err := spell.Decode(data, codec.WithStrict())
	s.Require().NoError(err)

	s.Equal("Example Spell", sp.Name)
	s.Equal(spell.SchoolEvocation, *sp.School)
	s.Equal([]string{"V", "M"}, sp.Components)
	s.Require().NotNil(sp.Level)
	s.Equal(0.0, *sp.Level)
	s.True(*sp.Ritual)
	s.Equal(spell.DurationConcentration, sp.DurationTypeOrDefault())

	first, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.JSONEq(string(data), string(first))

	var compact bytes.Buffer
	s.Require().NoError(json.Compact(&compact, data))
	s.Equal(compact.String(), string(first))

	again, err := spell.Decode(first)
	s.Require().NoError(err)
	second, err := spell.Encode(again)
	s.Require().NoError(err)
	s.Equal(string(first), string(second))
}

func (s *CodecTestSuite) TestFractionalNumbers() {
	payload := `{"name":"Grease","level":1,"range":2.5,"areaEffectShape":"cube","areaEffectSize":7.5,` +
		`"activation":0.5,"activationUnit":"minute","components":["V","S","M"],"duration":1.5,"durationUnit":"minute"}`

	sp, err := spell.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal(2.5, *sp.Range)
	s.Equal(7.5, *sp.AreaEffectSize)
	s.Equal(0.5, *sp.Activation)
	s.Equal(1.5, *sp.Duration)

	out, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.Equal(payload, string(out))
}

func (s *CodecTestSuite) TestExplicitZeroLevelIsKept() {
	sp, err := spell.Decode([]byte(`{"name":"Light","components":["V","M"],"level":0}`))
	s.Require().NoError(err)

	out, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.JSONEq(`{"name":"Light","components":["V","M"],"level":0}`, string(out))
}

func (s *CodecTestSuite) TestMinimalSpell() {
	data := fixtures.MustLoad(fixtures.SpellMinimal)

	sp, err := spell.Decode(data)
	s.Require().NoError(err)
	s.Nil(sp.Level, "absent level must stay unset")
	s.Equal(0.0, sp.LevelOrDefault())
	s.True(sp.IsCantrip())
	s.Equal(spell.RangeTypeRange, sp.RangeTypeOrDefault())
	s.Equal(spell.DurationInstantaneous, sp.DurationTypeOrDefault())

	out, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.JSONEq(string(data), string(out))
}

func (s *CodecTestSuite) TestComponentsAlwaysPresent() {
	sp, err := spell.Decode([]byte(`{"name":"Thought","components":[]}`))
	s.Require().NoError(err)
	s.NotNil(sp.Components)
	s.Empty(sp.Components)

	out, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.Equal(`{"name":"Thought","components":[]}`, string(out))

	built := &spell.Spell{Name: "Built"}
	out, err = spell.Encode(built)
	s.Require().NoError(err)
	s.Equal(`{"name":"Built","components":[]}`, string(out))

	out, err = json.Marshal(spell.Spell{Name: "Value"})
	s.Require().NoError(err)
	s.Equal(`{"name":"Value","components":[]}`, string(out))
}

func (s *CodecTestSuite) TestMissingRequiredFields() {
	testCases := []struct {
		name    string
		payload string
		missing []string
	}{
		{
			name:    "no components",
			payload: `{"name":"Shield"}`,
			missing: []string{"components"},
		},
		{
			name:    "null components",
			payload: `{"name":"Shield","components":null}`,
			missing: []string{"components"},
		},
		{
			name:    "nothing",
			payload: `{"level":1}`,
			missing: []string{"name", "components"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sp, err := spell.Decode([]byte(tc.payload))
			s.Nil(sp)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields := errors.GetFields(err)
			s.Len(fields, len(tc.missing))
			for _, f := range tc.missing {
				s.Equal([]string{"is required"}, fields[f])
			}
		})
	}
}

func (s *CodecTestSuite) TestTypeMismatch() {
	sp, err := spell.Decode([]byte(`{"name":"Shield","components":["V"],"ritual":"yes"}`))
	s.Nil(sp)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(errors.GetFields(err), "ritual")
}

func (s *CodecTestSuite) TestStrictEnums() {
	testCases := []struct {
		name    string
		payload string
		field   string
	}{
		{name: "school name instead of code", payload: `{"name":"x","components":[],"school":"evocation"}`, field: "school"},
		{name: "range type", payload: `{"name":"x","components":[],"rangeType":"far"}`, field: "rangeType"},
		{name: "area shape", payload: `{"name":"x","components":[],"areaEffectShape":"square"}`, field: "areaEffectShape"},
		{name: "activation unit", payload: `{"name":"x","components":[],"activationUnit":"bonus action"}`, field: "activationUnit"},
		{name: "duration unit", payload: `{"name":"x","components":[],"durationUnit":"week"}`, field: "durationUnit"},
		{name: "duration type", payload: `{"name":"x","components":[],"durationType":"permanent"}`, field: "durationType"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			lenient, err := spell.Decode([]byte(tc.payload))
			s.Require().NoError(err)
			s.NotNil(lenient)

			strict, err := spell.Decode([]byte(tc.payload), codec.WithStrict())
			s.Nil(strict)
			s.Require().Error(err)
			s.Contains(errors.GetFields(err), tc.field)
		})
	}
}

func (s *CodecTestSuite) TestStrictAcceptsCodes() {
	payload := `{
		"name": "Fireball",
		"components": ["V","S","M"],
		"school": "EV",
		"rangeType": "range",
		"areaEffectShape": "sphere",
		"activationUnit": "bonusActions",
		"durationUnit": "round",
		"durationType": "dispelOrTrigger"
	}`

	sp, err := spell.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal(spell.SchoolEvocation, *sp.School)
	s.Equal(spell.ActivationBonusAction, *sp.ActivationUnit)
	s.Equal(spell.DurationDispelOrTrigger, *sp.DurationType)
}

func (s *CodecTestSuite) TestOpenSets() {
	payload := `{"name":"Hex","components":["V","S","M","X"],"classes":["Hexblade Apprentice"],"tags":["homebrew"]}`

	sp, err := spell.Decode([]byte(payload), codec.WithStrict())
	s.Require().NoError(err)
	s.Equal([]string{"V", "S", "M", "X"}, sp.Components)
	s.Equal([]string{"Hexblade Apprentice"}, sp.Classes)
}

func (s *CodecTestSuite) TestExtensionRoundTrip() {
	payload := `{"name":"Wish","components":["V"],` +
		`"data":{"z":1,"a":{"list":[true,null,1.50]}},` +
		`"attributes":{"b":"two","a":[]}}`

	sp, err := spell.Decode([]byte(payload))
	s.Require().NoError(err)
	s.Equal([]string{"z", "a"}, sp.Data.Keys())
	s.Equal([]string{"b", "a"}, sp.Attributes.Keys())
	attr, _ := sp.Attributes.Get("a")
	s.Equal(extension.KindArray, attr.Kind())

	out, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.Equal(payload, string(out))
}

func (s *CodecTestSuite) TestUnknownFieldsIgnored() {
	sp, err := spell.Decode([]byte(`{"name":"Shield","components":["V","S"],"castingTime":"1 reaction"}`))
	s.Require().NoError(err)

	out, err := spell.Encode(sp)
	s.Require().NoError(err)
	s.JSONEq(`{"name":"Shield","components":["V","S"]}`, string(out))
}

func (s *CodecTestSuite) TestEncodeNil() {
	_, err := spell.Encode(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = spell.EncodeIndent(nil, "", "  ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestEncodeIndent() {
	sp := builders.NewSpellBuilder().
		WithName("Counterspell").
		WithLevel(3).
		WithComponents("S").
		Build()

	out, err := spell.EncodeIndent(sp, "", "  ")
	s.Require().NoError(err)
	s.Equal("{\n  \"name\": \"Counterspell\",\n  \"level\": 3,\n  \"components\": [\n    \"S\"\n  ]\n}", string(out))
}

func (s *CodecTestSuite) TestBuiltSpellRoundTrip() {
	sp := builders.NewSpellBuilder().
		WithName("Hold Person").
		WithLevel(2).
		WithSchool(spell.SchoolEnchantment).
		WithComponents("V", "S", "M").
		WithRange(60, spell.RangeTypeRange).
		WithDuration(1, spell.DurationMinute, spell.DurationConcentration).
		WithRitual().
		WithClasses("Bard", "Cleric").
		WithAttributes(extension.Member{Key: "save", Value: extension.String("wis")}).
		Build()

	data, err := spell.Encode(sp)
	s.Require().NoError(err)

	decoded, err := spell.Decode(data, codec.WithStrict())
	s.Require().NoError(err)
	s.True(sp.Attributes.Equal(decoded.Attributes))
	s.Equal(sp.Classes, decoded.Classes)
	s.Equal(spell.DurationConcentration, decoded.DurationTypeOrDefault())

	again, err := spell.Encode(decoded)
	s.Require().NoError(err)
	s.Equal(string(data), string(again))
}
