// Package extension provides the dynamically typed value tree used for the
// consumer-defined `data` and `attributes` payloads of monsters and spells.
//
// A Value is one of undefined, null, bool, number, string, object or array.
// Objects keep member order and numbers keep their literal text, so any JSON
// document decoded into a Value encodes back to the same document.
package extension

import (
	"bytes"
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// Kind identifies which variant a Value holds
type Kind int

// Value kinds. KindUndefined is the zero value and marks an absent field.
const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

var kindNames = map[Kind]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindObject:    "object",
	KindArray:     "array",
}

// String returns the lower case name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable JSON-like value.
type Value struct {
	kind Kind
	b    bool
	// s holds string contents or the literal text of a number
	s   string
	obj *orderedmap.OrderedMap[string, Value]
	arr []Value
}

// Member is one key/value pair of an object
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a number value with the given literal text
func Number(n json.Number) Value {
	return Value{kind: KindNumber, s: n.String()}
}

// Int returns a number value for an integer
func Int(i int64) Value {
	return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// Float returns a number value for a float. NaN and infinities cannot be
// encoded and make MarshalJSON fail.
func Float(f float64) Value {
	return Value{kind: KindNumber, s: strconv.FormatFloat(f, 'g', -1, 64)}
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Object returns an object holding members in the given order. A repeated
// key keeps its first position and its last value.
func Object(members ...Member) Value {
	om := orderedmap.New[string, Value]()
	for _, m := range members {
		om.Set(m.Key, m.Value)
	}
	return Value{kind: KindObject, obj: om}
}

// Array returns an array of the given elements
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether v is undefined. It lets `omitzero` drop absent fields.
func (v Value) IsZero() bool {
	return v.kind == KindUndefined
}

// IsNull reports whether v is the JSON null value
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string held by v
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsNumber returns the literal number held by v
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.s), true
}

// Float64 converts a number value to float64
func (v Value) Float64() (float64, error) {
	if v.kind != KindNumber {
		return 0, errors.FailedPreconditionf("value is %s, not number", v.kind)
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeOutOfRange, "number %s does not fit a float64", v.s)
	}
	return f, nil
}

// Get returns the member value for key when v is an object
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject || v.obj == nil {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// Index returns the i-th element when v is an array
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Len returns the number of members or elements; zero for scalars
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		if v.obj == nil {
			return 0
		}
		return v.obj.Len()
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// Keys returns object keys in order
func (v Value) Keys() []string {
	if v.kind != KindObject || v.obj == nil {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Members returns object members in order
func (v Value) Members() []Member {
	if v.kind != KindObject || v.obj == nil {
		return nil
	}
	members := make([]Member, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		members = append(members, Member{Key: pair.Key, Value: pair.Value})
	}
	return members
}

// Elements returns a copy of the array elements
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	elems := make([]Value, len(v.arr))
	copy(elems, v.arr)
	return elems
}

// Equal reports whether v and other hold the same tree. Numbers compare by
// literal text and object members compare in order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber, KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		a, b := v.Members(), other.Members()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Key != b[i].Key || !a[i].Value.Equal(b[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler. Undefined encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindUndefined, KindNull:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindNumber:
		if !json.Valid([]byte(v.s)) {
			return nil, errors.InvalidArgumentf("%q is not a JSON number", v.s)
		}
		return []byte(v.s), nil
	case KindString:
		return json.Marshal(v.s)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return v.obj.MarshalJSON()
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	}
	return nil, errors.Internalf("unknown value kind %d", int(v.kind))
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.InvalidArgument("empty JSON value")
	}

	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return errors.InvalidArgumentf("invalid JSON literal %s", data)
		}
		*v = Null()
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON boolean")
		}
		*v = Bool(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON string")
		}
		*v = String(s)
	case '{':
		om := orderedmap.New[string, Value]()
		if err := om.UnmarshalJSON(data); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON object")
		}
		*v = Value{kind: KindObject, obj: om}
	case '[':
		var arr []Value
		if err := json.Unmarshal(data, &arr); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON array")
		}
		if arr == nil {
			arr = []Value{}
		}
		*v = Value{kind: KindArray, arr: arr}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON number")
		}
		*v = Number(n)
	}
	return nil
}

// Parse decodes a JSON document into a Value
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		return Value{}, errors.InvalidArgument("invalid JSON document")
	}
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return Value{}, err
	}
	return v, nil
}
