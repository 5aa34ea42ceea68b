package object

import (
	"encoding/json"
	"fmt"
)

// Pair holds one key of an object together with its value.
// It is the element type produced by [ToPairs] for plain objects.
//
// Pairs encode as two-element arrays, [key, value], in both JSON and YAML.
type Pair struct {
	Key   string
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %v)", p.Key, p.Value)
}

// MarshalJSON encodes p as [key, value].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Key, p.Value})
}

// MarshalYAML encodes p as a two-element sequence.
func (p Pair) MarshalYAML() (any, error) {
	return []any{p.Key, p.Value}, nil
}
