package codec

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"reflect"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// Object splits a JSON payload into its top-level members
func Object(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.InvalidArgument("payload is empty")
	}
	if !json.Valid(trimmed) {
		return nil, errors.InvalidArgument("payload is not valid JSON")
	}
	if trimmed[0] != '{' {
		return nil, errors.InvalidArgument("payload must be a JSON object")
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "payload is not a JSON object")
	}
	return obj, nil
}

// Present reports whether key is set to a non-null value
func Present(obj map[string]json.RawMessage, key string) bool {
	raw, ok := obj[key]
	if !ok {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// MissingKeys returns the required keys that are absent or null, in the
// order they were given
func MissingKeys(obj map[string]json.RawMessage, required ...string) []string {
	var missing []string
	for _, key := range required {
		if !Present(obj, key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// UnknownKeys returns the sorted top-level keys not listed in known
func UnknownKeys(obj map[string]json.RawMessage, known []string) []string {
	knownSet := make(map[string]struct{}, len(known))
	for _, k := range known {
		knownSet[k] = struct{}{}
	}

	var unknown []string
	for key := range obj {
		if _, ok := knownSet[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Fields returns the JSON member names of a struct value or pointer, in
// declaration order
func Fields(v any) []string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := jsonName(t.Field(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

// Decode checks that every required key is present and then unmarshals data
// into target. Numbers sent for text fields are kept as their literal text
// (see QuoteNumbers). All missing keys and type mismatches are reported
// together as an InvalidArgument validation error. The top-level members are
// returned for further inspection.
func Decode(data []byte, target any, required ...string) (map[string]json.RawMessage, error) {
	obj, err := Object(data)
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	for _, key := range MissingKeys(obj, required...) {
		vb.RequiredField(key)
	}

	if err := json.Unmarshal(QuoteNumbers(data, target), target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !stderrors.As(err, &typeErr) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode payload")
		}
		field := typeErr.Field
		if field == "" {
			field = "$"
		}
		vb.Fieldf(field, "must be %s, got %s", typeErr.Type, typeErr.Value)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return obj, nil
}

// jsonName returns the member name of an exported, non-ignored field
func jsonName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, true
}
