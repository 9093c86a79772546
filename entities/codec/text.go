package codec

import (
	"bytes"
	"encoding/json"
	"reflect"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// QuoteNumbers rewrites JSON numbers that land on string fields of target's
// type into strings holding the literal text, so `cr: 5` or `ac: 15` from a
// YAML statblock decode as "5" and "15". Nested structs and slices are
// followed; types with their own UnmarshalJSON are left alone. Payloads that
// do not match the expected shape are returned unchanged and left for the
// decoder to report.
func QuoteNumbers(data []byte, target any) []byte {
	t := reflect.TypeOf(target)
	if t == nil {
		return data
	}
	out, _ := quoteNumbers(data, t)
	return out
}

func quoteNumbers(raw []byte, t reflect.Type) ([]byte, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || reflect.PointerTo(t).Implements(unmarshalerType) {
		return raw, false
	}

	switch t.Kind() {
	case reflect.String:
		if !isNumber(trimmed) {
			return raw, false
		}
		quoted, err := json.Marshal(string(trimmed))
		if err != nil {
			return raw, false
		}
		return quoted, true

	case reflect.Slice:
		if trimmed[0] != '[' {
			return raw, false
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return raw, false
		}
		changed := false
		for i := range elems {
			var c bool
			elems[i], c = quoteNumbers(elems[i], t.Elem())
			changed = changed || c
		}
		return remarshal(raw, elems, changed)

	case reflect.Struct:
		if trimmed[0] != '{' {
			return raw, false
		}
		var members map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &members); err != nil {
			return raw, false
		}
		fields := fieldTypes(t)
		changed := false
		for key, val := range members {
			ft, ok := fields[key]
			if !ok {
				continue
			}
			var c bool
			members[key], c = quoteNumbers(val, ft)
			changed = changed || c
		}
		return remarshal(raw, members, changed)
	}
	return raw, false
}

func remarshal(raw []byte, v any, changed bool) ([]byte, bool) {
	if !changed {
		return raw, false
	}
	out, err := json.Marshal(v)
	if err != nil {
		return raw, false
	}
	return out, true
}

func isNumber(b []byte) bool {
	if b[0] != '-' && (b[0] < '0' || b[0] > '9') {
		return false
	}
	return json.Valid(b)
}

// fieldTypes maps JSON member names to field types
func fieldTypes(t reflect.Type) map[string]reflect.Type {
	types := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if name, ok := jsonName(f); ok {
			types[name] = f.Type
		}
	}
	return types
}
