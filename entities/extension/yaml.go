package extension

import (
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// FromYAML converts a decoded YAML node into a Value, keeping mapping order.
// Numbers already written in JSON form keep their literal text, so large
// integers survive unchanged. Timestamps and binary scalars are kept as their
// source text.
func FromYAML(node *yaml.Node) (Value, error) {
	if node == nil {
		return Null(), nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.MappingNode:
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, errors.InvalidArgumentf("line %d: mapping keys must be scalars", key.Line)
			}
			val, err := FromYAML(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: key.Value, Value: val})
		}
		return Object(members...), nil
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := FromYAML(child)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, val)
		}
		return Array(elems...), nil
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	}
	return Value{}, errors.InvalidArgumentf("line %d: unsupported YAML node", node.Line)
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "line %d: invalid boolean", node.Line)
		}
		return Bool(b), nil
	case "!!int":
		if isJSONNumber(node.Value) {
			return Number(json.Number(node.Value)), nil
		}
		var i int64
		if err := node.Decode(&i); err != nil {
			return Value{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "line %d: invalid integer", node.Line)
		}
		return Int(i), nil
	case "!!float":
		if isJSONNumber(node.Value) {
			return Number(json.Number(node.Value)), nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "line %d: invalid float", node.Line)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, errors.InvalidArgumentf("line %d: %s has no JSON representation", node.Line, node.Value)
		}
		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}

func isJSONNumber(text string) bool {
	if text == "" || (text[0] != '-' && (text[0] < '0' || text[0] > '9')) {
		return false
	}
	return json.Valid([]byte(text))
}
