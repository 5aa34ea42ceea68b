// Package arr provides standalone, lodash-style helpers for slices and for
// collections of dynamically shaped values such as decoded JSON/YAML
// documents.
//
// # Slice helpers
//
// The purely positional helpers are generic and operate on plain []T
// values:
//
//	chunks := arr.Chunk([]string{"a", "b", "c", "d"}, 3) // → [[a b c] [d]]
//	arr.Compact([]any{0, 1, false, 2, "", 3})            // → [1 2 3]
//	arr.Drop([]int{1, 2, 3}, 1)                          // → [2 3]
//	arr.Take([]int{1, 2, 3}, 2)                          // → [1 2]
//
// # Predicates
//
// [DropWhile], [Filter] and [Find] take a predicate in any shape understood
// by predicate.Of: a func(any) bool, a property name, a [key, value] pair or
// a partial object.
//
//	users := []any{
//	    object.Of("user", "barney", "age", 36, "active", true),
//	    object.Of("user", "fred", "age", 40, "active", false),
//	}
//	arr.Filter(users, []any{"active", false})          // → [fred]
//	arr.Find(users, object.Of("age", 36))              // → barney, true
//	arr.Filter(users, predicate.MustExpr("age > 38"))  // → [fred]
//
// # Collections
//
// [Filter], [Find], [Includes] and [Map] accept either a sequence or a plain
// object; objects are viewed as the ordered sequence of their values (see
// [Values]). Invalid input never panics or errors: it degrades to an empty
// result or "not found".
package arr
