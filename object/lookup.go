package object

import "sort"

// IsPlain reports whether v is a plain object: a non-nil *Object or a
// map[string]any. Slices, structs, pointers to other types and maps with
// other key or value types are not plain objects.
func IsPlain(v any) bool {
	switch x := v.(type) {
	case *Object:
		return x != nil
	case map[string]any:
		return x != nil
	}
	return false
}

// IsMergeable reports whether [Merge] recurses into v instead of
// overwriting it: plain objects and []any sequences.
//
// Sequences are mergeable even though [IsPlain] rejects them. They merge
// index by index as if keyed by position.
func IsMergeable(v any) bool {
	if IsPlain(v) {
		return true
	}
	s, ok := v.([]any)
	return ok && s != nil
}

// Lookup returns the own property key of item. Items that are not plain
// objects have no own properties.
func Lookup(item any, key string) (any, bool) {
	switch x := item.(type) {
	case *Object:
		return x.Get(key)
	case map[string]any:
		v, ok := x[key]
		return v, ok
	}
	return nil, false
}

// HasOwn reports whether item is a plain object with key as an own property.
func HasOwn(item any, key string) bool {
	_, ok := Lookup(item, key)
	return ok
}

// Entries returns the own key/value pairs of a plain object: insertion order
// for *Object, sorted key order for map[string]any. The second result is
// false when v is not a plain object.
func Entries(v any) ([]Pair, bool) {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil, false
		}
		return x.Pairs(), true
	case map[string]any:
		if x == nil {
			return nil, false
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Pair, len(keys))
		for i, k := range keys {
			out[i] = Pair{Key: k, Value: x[k]}
		}
		return out, true
	}
	return nil, false
}
