package sanitize

import "encoding/json"

// EncodeJSON marshals a value to its JSON text. The original value is
// returned unchanged when it cannot be marshaled.
func EncodeJSON(value any) any {
	b, err := json.Marshal(value)
	if err != nil {
		return value
	}
	return string(b)
}

// DecodeJSON unmarshals a JSON string into its natural Go representation
// (map[string]any, []any, string, float64, bool, nil). Non-string or invalid
// input is returned unchanged.
func DecodeJSON(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return value
	}
	return out
}
