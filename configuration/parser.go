package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// lowerKeys lower cases all keys of the (nested) config map in place.
func lowerKeys(m map[string]interface{}) {
	for key, value := range m {
		switch nested := value.(type) {
		case map[string]interface{}:
			lowerKeys(nested)
		case map[interface{}]interface{}:
			// yaml.v2 decodes nested maps with interface keys
			converted := cast.ToStringMap(nested)
			lowerKeys(converted)
			value = converted
		}

		if lower := strings.ToLower(key); lower != key {
			delete(m, key)
			key = lower
		}
		m[key] = value
	}
}

// JSONLowerParser implements a koanf JSON parser that lower cases all config keys.
type JSONLowerParser struct{}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	lowerKeys(out)

	return out, nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// YAMLLowerParser implements a koanf YAML parser that lower cases all config keys.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	lowerKeys(out)

	return out, nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
