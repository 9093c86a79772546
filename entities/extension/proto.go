package extension

import (
	"sort"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// ToProto converts v to a protobuf Value for services that carry extension
// data over gRPC. Numbers become float64 and object order is not preserved.
func (v Value) ToProto() (*structpb.Value, error) {
	switch v.kind {
	case KindUndefined, KindNull:
		return structpb.NewNullValue(), nil
	case KindBool:
		return structpb.NewBoolValue(v.b), nil
	case KindNumber:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return structpb.NewNumberValue(f), nil
	case KindString:
		return structpb.NewStringValue(v.s), nil
	case KindObject:
		fields := make(map[string]*structpb.Value, v.Len())
		for _, m := range v.Members() {
			pv, err := m.Value.ToProto()
			if err != nil {
				return nil, errors.Wrapf(err, "failed to convert member %q", m.Key)
			}
			fields[m.Key] = pv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	case KindArray:
		values := make([]*structpb.Value, len(v.arr))
		for i, elem := range v.arr {
			pv, err := elem.ToProto()
			if err != nil {
				return nil, errors.Wrapf(err, "failed to convert element %d", i)
			}
			values[i] = pv
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
	}
	return nil, errors.Internalf("unknown value kind %d", int(v.kind))
}

// FromProto converts a protobuf Value. Struct fields are ordered by key since
// protobuf maps carry no order. A nil value converts to null.
func FromProto(pv *structpb.Value) Value {
	if pv == nil {
		return Null()
	}
	switch k := pv.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		return Float(k.NumberValue)
	case *structpb.Value_StringValue:
		return String(k.StringValue)
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, key := range keys {
			members[i] = Member{Key: key, Value: FromProto(fields[key])}
		}
		return Object(members...)
	case *structpb.Value_ListValue:
		values := k.ListValue.GetValues()
		elems := make([]Value, len(values))
		for i, elem := range values {
			elems[i] = FromProto(elem)
		}
		return Array(elems...)
	default:
		return Null()
	}
}
