package spell

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/errors"
)

// Decode reads a spell payload. Unknown members are ignored and the
// returned spell always has a non-nil Components slice. With
// codec.WithStrict every enumerated member must be one of its codes.
func Decode(data []byte, opts ...codec.Option) (*Spell, error) {
	o := codec.Apply(opts...)

	var sp Spell
	if _, err := codec.Decode(data, &sp, RequiredFields...); err != nil {
		return nil, errors.Wrap(err, "invalid spell payload")
	}
	if sp.Components == nil {
		sp.Components = []string{}
	}

	if o.Strict {
		if err := sp.ValidateEnums(); err != nil {
			return nil, errors.Wrap(err, "invalid spell payload")
		}
	}

	return &sp, nil
}

// Encode writes s in compact form
func Encode(s *Spell) ([]byte, error) {
	if s == nil {
		return nil, errors.InvalidArgument("spell cannot be nil")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode spell %q", s.Name)
	}
	return data, nil
}

// EncodeIndent is Encode with indentation
func EncodeIndent(s *Spell, prefix, indent string) ([]byte, error) {
	if s == nil {
		return nil, errors.InvalidArgument("spell cannot be nil")
	}
	data, err := json.MarshalIndent(s, prefix, indent)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode spell %q", s.Name)
	}
	return data, nil
}

// Validate checks that the name is not blank and components are set
func (s *Spell) Validate() error {
	if s == nil {
		return errors.InvalidArgument("spell cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", s.Name, vb)
	errors.ValidatePresent("components", s.Components != nil, vb)
	for i, c := range s.Components {
		errors.ValidateRequired(componentField(i), c, vb)
	}
	return vb.Build()
}

// ValidateEnums checks closed-set members against their documented codes
func (s *Spell) ValidateEnums() error {
	if s == nil {
		return errors.InvalidArgument("spell cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	Schools.Validate(s.School, vb)
	RangeTypes.Validate(s.RangeType, vb)
	AreaEffectShapes.Validate(s.AreaEffectShape, vb)
	ActivationUnits.Validate(s.ActivationUnit, vb)
	DurationUnits.Validate(s.DurationUnit, vb)
	DurationTypes.Validate(s.DurationType, vb)
	return vb.Build()
}

func componentField(i int) string {
	return "components[" + strconv.Itoa(i) + "]"
}
