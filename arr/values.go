package arr

import (
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/object"
)

// Values returns the canonical ordered view of a collection:
//
//   - []any is returned as is;
//   - any other slice or array is copied into a new []any;
//   - *object.Object yields its values in insertion order;
//   - map[string]any yields its values in sorted key order.
//
// The second result is false for anything else (strings, nil, numbers,
// other maps, structs); those are not collections.
func Values(collection any) ([]any, bool) {
	if values, ok := sequence(collection); ok {
		return values, true
	}
	entries, ok := object.Entries(collection)
	if !ok {
		return nil, false
	}
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out, true
}

// sequence converts a slice or array of any element type to []any.
func sequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
