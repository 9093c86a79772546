package monster

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/errors"
)

// Decode reads a monster payload. Unknown members are ignored. Every missing
// required member is reported in a single InvalidArgument error. With
// codec.WithStrict a size outside the documented set is rejected too.
func Decode(data []byte, opts ...codec.Option) (*Monster, error) {
	o := codec.Apply(opts...)

	var m Monster
	if _, err := codec.Decode(data, &m, RequiredFields...); err != nil {
		return nil, errors.Wrap(err, "invalid monster payload")
	}

	if o.Strict {
		if err := m.ValidateEnums(); err != nil {
			return nil, errors.Wrap(err, "invalid monster payload")
		}
	}

	return &m, nil
}

// Encode writes m in compact form, omitting every unset optional member
func Encode(m *Monster) ([]byte, error) {
	if m == nil {
		return nil, errors.InvalidArgument("monster cannot be nil")
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode monster %q", m.Name)
	}
	return data, nil
}

// EncodeIndent is Encode with indentation
func EncodeIndent(m *Monster, prefix, indent string) ([]byte, error) {
	if m == nil {
		return nil, errors.InvalidArgument("monster cannot be nil")
	}
	data, err := json.MarshalIndent(m, prefix, indent)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode monster %q", m.Name)
	}
	return data, nil
}

// Validate checks that the required text members are not blank
func (m *Monster) Validate() error {
	if m == nil {
		return errors.InvalidArgument("monster cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", m.Name, vb)
	errors.ValidateRequired("cr", m.CR, vb)
	return vb.Build()
}

// ValidateEnums checks closed-set members against their documented codes
func (m *Monster) ValidateEnums() error {
	if m == nil {
		return errors.InvalidArgument("monster cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	Sizes.Validate(m.Size, vb)
	return vb.Build()
}
