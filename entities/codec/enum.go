package codec

import (
	"strings"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// Enum describes a closed set of wire codes, each with a descriptive name.
// Codes are the values written to payloads; names are accepted by Parse.
type Enum[T ~string] struct {
	field string
	codes []T
	names map[T]string
}

// NewEnum builds an Enum for the given payload field. codes fixes the
// documented order; names maps each code to its long name.
func NewEnum[T ~string](field string, codes []T, names map[T]string) *Enum[T] {
	return &Enum[T]{
		field: field,
		codes: codes,
		names: names,
	}
}

// Field returns the payload field the enum belongs to
func (e *Enum[T]) Field() string {
	return e.field
}

// Codes returns the codes in documented order
func (e *Enum[T]) Codes() []T {
	out := make([]T, len(e.codes))
	copy(out, e.codes)
	return out
}

// Strings returns the codes as plain strings
func (e *Enum[T]) Strings() []string {
	out := make([]string, len(e.codes))
	for i, c := range e.codes {
		out[i] = string(c)
	}
	return out
}

// Contains reports whether v is exactly one of the codes
func (e *Enum[T]) Contains(v T) bool {
	for _, c := range e.codes {
		if c == v {
			return true
		}
	}
	return false
}

// Name returns the long name for a code, or the code itself when unknown
func (e *Enum[T]) Name(v T) string {
	if name, ok := e.names[v]; ok {
		return name
	}
	return string(v)
}

// Parse resolves raw to a code. Exact codes win; otherwise codes and long
// names match case-insensitively.
func (e *Enum[T]) Parse(raw string) (T, error) {
	candidate := strings.TrimSpace(raw)
	if e.Contains(T(candidate)) {
		return T(candidate), nil
	}
	if candidate != "" {
		for _, c := range e.codes {
			if strings.EqualFold(string(c), candidate) || strings.EqualFold(e.names[c], candidate) {
				return c, nil
			}
		}
	}
	var zero T
	return zero, errors.InvalidArgumentf("%q is not a valid %s", raw, e.field).
		WithMeta("field", e.field).
		WithMeta("allowed", e.Strings())
}

// Validate records a field error when a set value is not one of the codes
func (e *Enum[T]) Validate(v *T, vb *errors.ValidationBuilder) {
	if v == nil {
		return
	}
	e.ValidateAt(e.field, *v, vb)
}

// ValidateAt validates v and reports it under an explicit field path
func (e *Enum[T]) ValidateAt(field string, v T, vb *errors.ValidationBuilder) {
	errors.ValidateEnum(field, string(v), e.Strings(), vb)
}
