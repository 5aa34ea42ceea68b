// Package object provides an insertion-ordered plain-object type and the
// object utilities built on it: recursive merging, key picking and omitting,
// and conversion to key/value pairs.
//
// # Plain objects
//
// Go maps do not remember insertion order, so documents decoded by this
// package use [Object], an ordered string-keyed mapping:
//
//	o := object.Of("a", 1, "b", "2", "c", 3)
//	o.Keys()   // → [a b c]
//	o.Set("a", 10)
//	o.Keys()   // → [a b c] (re-setting keeps the position)
//
// A plain map[string]any is accepted anywhere an object is expected; its
// keys are visited in sorted order.
//
// # Picking and omitting
//
// Paths are flat property names, passed as strings or string slices and
// flattened one level:
//
//	object.Pick(o, "a", []string{"c"})  // → {a: 10, c: 3}
//	object.Omit(o, []string{"a", "c"})  // → {b: "2"}
//
// # Merging
//
// [Merge] is the one operation in this module that mutates its argument:
// it merges sources into the target, recursing into nested objects and
// slices, and returns the target. [Merged] is the non-mutating variant.
//
//	target := object.Of("a", []any{object.Of("b", 2), object.Of("d", 4)})
//	object.Merge(target, object.Of("a", []any{object.Of("c", 3), object.Of("e", 5)}))
//	// target → {a: [{b: 2, c: 3}, {d: 4, e: 5}]}
//
// # Documents
//
// [ParseJSON], [ParseYAML] and [Decode] turn documents into trees of
// *Object, []any and scalars while keeping key order. *Object marshals back
// to JSON and YAML in the same order.
package object
