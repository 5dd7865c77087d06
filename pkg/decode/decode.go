// Package decode converts loosely-typed maps into typed structs via JSON
// round-tripping.
package decode

import "encoding/json"

// FromMap decodes a string-keyed map into the target type T.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
