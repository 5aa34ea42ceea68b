package object

import (
	"iter"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Key selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new Object with the own keys of obj named by paths, in
// obj's key order. Paths are normalised with [NormalizePaths]. A value that
// is not a plain object yields an empty Object.
//
//	object.Pick(object.Of("a", 1, "b", "2", "c", 3), []string{"a", "c"})
//	// → {a: 1, c: 3}
func Pick(obj any, paths ...any) *Object {
	set := NormalizePaths(paths...)
	return selectEntries(obj, func(p Pair) bool { return set.Has(p.Key) })
}

// Omit is the complement of [Pick]: it returns a new Object with every own
// key of obj except those named by paths.
//
//	object.Omit(object.Of("a", 1, "b", "2", "c", 3), []string{"a", "c"})
//	// → {b: "2"}
func Omit(obj any, paths ...any) *Object {
	set := NormalizePaths(paths...)
	return selectEntries(obj, func(p Pair) bool { return !set.Has(p.Key) })
}

// PickBy returns a new Object with the own keys of obj whose value satisfies
// fn. A nil fn or a value that is not a plain object yields an empty Object.
func PickBy(obj any, fn func(value any) bool) *Object {
	if fn == nil {
		return New()
	}
	return selectEntries(obj, func(p Pair) bool { return fn(p.Value) })
}

// OmitBy is the complement of [PickBy]: it keeps the own keys whose value
// does not satisfy fn. With a nil fn every key is kept (a shallow copy).
func OmitBy(obj any, fn func(value any) bool) *Object {
	if fn == nil {
		return selectEntries(obj, func(Pair) bool { return true })
	}
	return selectEntries(obj, func(p Pair) bool { return !fn(p.Value) })
}

func selectEntries(obj any, keep func(Pair) bool) *Object {
	entries, ok := Entries(obj)
	if !ok {
		return New()
	}
	out := New()
	for _, e := range entries {
		if keep(e) {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Pairs
// ─────────────────────────────────────────────────────────────────────────────

// ToPairs returns the key/value pairs of v.
//
// For a plain object the result holds one [Pair] per own key, in key order.
//
// For any other Go map, string-keyed maps with a typed value such as
// map[string]int included (the counterpart of a keyed collection such as
// a Map or Set), the result is a single-element slice whose only element is an
// iter.Seq2[any, any] over the map's entries, not the expanded pairs. This
// mirrors the established behaviour of this function and is likely not what
// callers want; range over the iterator to obtain the entries.
//
// Any other value yields an empty slice.
func ToPairs(v any) []any {
	if entries, ok := Entries(v); ok {
		out := make([]any, len(entries))
		for i, e := range entries {
			out[i] = e
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && !rv.IsNil() {
		return []any{mapEntries(rv)}
	}
	return []any{}
}

func mapEntries(rv reflect.Value) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		it := rv.MapRange()
		for it.Next() {
			if !yield(it.Key().Interface(), it.Value().Interface()) {
				return
			}
		}
	}
}
