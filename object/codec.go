package object

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"
)

// ─────────────────────────────────────────────────────────────────────────────
// Decoding
// ─────────────────────────────────────────────────────────────────────────────

// ParseYAML decodes a YAML (or JSON, which is a subset) document into a tree
// of *Object, []any and scalars, keeping the key order of every mapping.
//
// Integers decode as int (or uint64 when they do not fit), floats as
// float64, null as nil. Non-string mapping keys are formatted with %v.
func ParseYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return fromYAML(raw), nil
}

// ParseJSON is like [ParseYAML] but rejects input that is not valid JSON.
func ParseJSON(data []byte) (any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}
	return ParseYAML(data)
}

// Decode reads a whole JSON or YAML document from r and parses it with
// [ParseYAML].
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ParseYAML(data)
}

// ParseObject parses a document whose root must be an object.
// It returns [ErrNotObject] when the root is anything else.
func ParseObject(data []byte) (*Object, error) {
	doc, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	o, ok := doc.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, doc)
	}
	return o, nil
}

func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		o := &Object{
			keys:   make([]string, 0, len(x)),
			values: make(map[string]any, len(x)),
		}
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			o.Set(key, fromYAML(item.Value))
		}
		return o
	case map[string]any:
		o := FromMap(x)
		for _, k := range o.keys {
			o.values[k] = fromYAML(o.values[k])
		}
		return o
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = fromYAML(item)
		}
		return out
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x)
		}
		return x
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
		return x
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes o as a JSON object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("object: encode key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of o with the JSON object in data.
func (o *Object) UnmarshalJSON(data []byte) error {
	doc, err := ParseJSON(data)
	if err != nil {
		return err
	}
	return o.assign(doc)
}

// MarshalYAML encodes o as an ordered YAML mapping.
func (o *Object) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, o.Len())
	o.Range(func(k string, v any) bool {
		ms = append(ms, yaml.MapItem{Key: k, Value: v})
		return true
	})
	return ms, nil
}

// UnmarshalYAML replaces the contents of o with the YAML mapping in data.
func (o *Object) UnmarshalYAML(data []byte) error {
	doc, err := ParseYAML(data)
	if err != nil {
		return err
	}
	return o.assign(doc)
}

func (o *Object) assign(doc any) error {
	src, ok := doc.(*Object)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrNotObject, doc)
	}
	o.keys = src.keys
	o.values = src.values
	return nil
}
