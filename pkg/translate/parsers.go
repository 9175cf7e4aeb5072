package translate

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document of per-language template maps, the
// top level keyed by language code.
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("translate: parsing YAML: %w", err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		langMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("translate: invalid YAML structure for language %q: expected map, got %T", lang, val)
		}
		result[lang] = langMap
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("translate: no templates found in YAML content")
	}
	return result, nil
}

// ParseJSON decodes a JSON document of per-language template maps.
func ParseJSON(content []byte) (map[string]map[string]any, error) {
	var result map[string]map[string]any
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("translate: parsing JSON: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("translate: no templates found in JSON content")
	}
	return result, nil
}
