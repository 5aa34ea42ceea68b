package arr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/object"
	"github.com/hasbyte1/go-lodash-utils/predicate"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & Searching
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the values of collection (see [Values]) that satisfy the
// predicate raw, in order. raw is any shape accepted by [predicate.Of]:
//
//	arr.Filter(users, func(u any) bool { ... })
//	arr.Filter(users, object.Of("age", 36, "active", true))
//	arr.Filter(users, []any{"active", false})
//	arr.Filter(users, "active")
//
// An absent predicate returns the collection's values unchanged. An invalid
// predicate, an unsupported collection or an empty one yields an empty
// slice.
func Filter(collection any, raw any) []any {
	values, ok := Values(collection)
	if !ok || len(values) == 0 {
		return []any{}
	}
	p := predicate.Of(raw)
	if p.IsAbsent() {
		return values
	}
	if !p.Valid() {
		return []any{}
	}
	out := make([]any, 0, len(values))
	for _, v := range values {
		if p.Test(v) {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the first value of collection at or after offset from[0]
// (default 0) that satisfies the predicate raw. A negative offset counts
// from the end.
//
// The second result is false when nothing matches, when the predicate is
// absent or invalid, when the offset is past the end, or when collection is
// not a collection.
func Find(collection any, raw any, from ...int) (any, bool) {
	values, ok := Values(collection)
	if !ok || len(values) == 0 {
		return nil, false
	}
	p := predicate.Of(raw)
	if p.IsAbsent() || !p.Valid() {
		return nil, false
	}
	start, ok := offset(len(values), from)
	if !ok {
		return nil, false
	}
	for _, v := range values[start:] {
		if p.Test(v) {
			return v, true
		}
	}
	return nil, false
}

func offset(n int, from []int) (int, bool) {
	if len(from) == 0 {
		return 0, true
	}
	start := from[0]
	if start > n {
		return 0, false
	}
	if start < 0 {
		start = max(n+start, 0)
	}
	return start, true
}

// Includes reports whether value is in collection, searching from
// fromIndex[0] (default 0). A negative index counts from the end; an index
// whose magnitude exceeds the length yields false.
//
// When collection is a string, Includes reports whether it contains value
// (formatted with %v if not a string) as a substring; offsets count runes.
// Otherwise collection is viewed through [Values] and elements are compared
// with [lang.SameValueZero].
//
// A falsy value (nil, false, 0, "") is never reported as included.
//
//	arr.Includes([]int{1, 2, 3}, 1)                    // → true
//	arr.Includes([]int{1, 2, 3}, 1, 2)                 // → false
//	arr.Includes(object.Of("a", 1, "b", 2), 2, -1)     // → true
//	arr.Includes("abcd", "bc")                         // → true
func Includes(collection any, value any, fromIndex ...int) bool {
	from := 0
	if len(fromIndex) > 0 {
		from = fromIndex[0]
	}
	if s, ok := collection.(string); ok {
		return includesString(s, value, from)
	}

	values, ok := Values(collection)
	if !ok || len(values) == 0 || !lang.Truthy(value) {
		return false
	}
	start, ok := signedOffset(len(values), from)
	if !ok {
		return false
	}
	for _, v := range values[start:] {
		if lang.SameValueZero(v, value) {
			return true
		}
	}
	return false
}

func includesString(s string, value any, from int) bool {
	if s == "" || !lang.Truthy(value) {
		return false
	}
	needle, ok := value.(string)
	if !ok {
		needle = fmt.Sprintf("%v", value)
	}
	start, ok := signedOffset(utf8.RuneCountInString(s), from)
	if !ok {
		return false
	}
	return strings.Contains(string([]rune(s)[start:]), needle)
}

func signedOffset(n, from int) (int, bool) {
	if from > n || -from > n {
		return 0, false
	}
	if from < 0 {
		return n + from, true
	}
	return from, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns the values of collection transformed by iteratee, which is
// either a func(any) any or a property name:
//
//	arr.Map([]int{4, 8}, func(n any) any { return n.(int) * n.(int) }) // → [16 64]
//	arr.Map(users, "user")                                               // → [barney fred]
//
// A property missing from an element maps to nil. Any other iteratee, an
// unsupported collection or an empty one yields an empty slice.
func Map(collection any, iteratee any) []any {
	values, ok := Values(collection)
	if !ok || len(values) == 0 {
		return []any{}
	}
	fn := toIteratee(iteratee)
	if fn == nil {
		return []any{}
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

func toIteratee(raw any) func(any) any {
	switch it := raw.(type) {
	case func(any) any:
		return it
	case string:
		if it == "" {
			return nil
		}
		return func(v any) any {
			val, _ := object.Lookup(v, it)
			return val
		}
	}
	return nil
}
