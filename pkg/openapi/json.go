package openapi

import "encoding/json"

// MarshalJSON serializes the spec as indented JSON, ready to serve.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}
