package codec

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-entities/entities/extension"
	"github.com/KirkDiggler/rpg-entities/errors"
)

// Format is a payload serialization
type Format string

// Supported payload formats
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(FormatAuto):
		return FormatAuto, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", errors.InvalidArgumentf("format %q is not supported", raw)
	}
}

// FormatForPath resolves FormatAuto from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string, f Format) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// YAMLToJSON converts a YAML document to the equivalent JSON, keeping
// mapping order
func YAMLToJSON(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "payload is not valid YAML")
	}

	v, err := extension.FromYAML(&node)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert YAML payload")
	}
	return out, nil
}

// ToJSON returns data as JSON, converting from YAML when f says so
func ToJSON(data []byte, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return YAMLToJSON(data)
	case FormatJSON, FormatAuto, "":
		return data, nil
	default:
		return nil, errors.InvalidArgumentf("format %q is not supported", f)
	}
}
