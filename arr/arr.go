package arr

import (
	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/predicate"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty [][]T if size < 1 or items is empty.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Compact returns the elements of items that are truthy (see [lang.Truthy]),
// dropping nil, false, numeric zero, NaN and "".
func Compact[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if lang.Truthy(item) {
			out = append(out, item)
		}
	}
	return out
}

// Drop returns items without its first n elements.
// n <= 0 returns items unchanged; n >= len(items) returns an empty slice.
func Drop[T any](items []T, n int) []T {
	if n <= 0 {
		return items
	}
	if n >= len(items) {
		return []T{}
	}
	return clone(items[n:])
}

// Take returns the first n elements of items (all of them if n exceeds the
// length). n <= 0 returns an empty slice.
func Take[T any](items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	return clone(items[:min(n, len(items))])
}

// DropWhile drops elements from the start of items while they satisfy the
// predicate and returns the rest. raw is any predicate shape accepted by
// [predicate.Of]:
//
//	users := []any{
//	    object.Of("user", "barney", "active", false),
//	    object.Of("user", "fred", "active", false),
//	    object.Of("user", "pebbles", "active", true),
//	}
//	arr.DropWhile(users, func(u any) bool { v, _ := object.Lookup(u, "active"); return v == false })
//	// → [pebbles]
//	arr.DropWhile(users, object.Of("user", "barney", "active", false)) // → [fred pebbles]
//	arr.DropWhile(users, []any{"active", false})                        // → [pebbles]
//	arr.DropWhile(users, "active")                                      // → [barney fred pebbles]
//
// A property-name predicate drops the elements that lack the property, so
// the result starts at the first element that has it; the last example
// drops nothing because every user has "active".
//
// raw may also be a func(T) bool typed for the element type:
//
//	arr.DropWhile([]int{1, 2, 10, 3}, func(n int) bool { return n < 5 }) // → [10 3]
//
// When every element is dropped the result is empty. An absent or
// unsupported predicate drops nothing; an invalid one yields an empty slice.
func DropWhile[T any](items []T, raw any) []T {
	if len(items) == 0 {
		return []T{}
	}
	if fn, ok := raw.(func(T) bool); ok && fn != nil {
		raw = func(item any) bool { return fn(item.(T)) }
	}
	p := predicate.Of(raw)
	if !p.Valid() {
		return []T{}
	}
	if p.IsAbsent() {
		return items
	}

	drop := p.Test
	if p.Kind() == predicate.KindProperty {
		drop = func(item any) bool { return !p.Test(item) }
	}
	for i, item := range items {
		if !drop(item) {
			return clone(items[i:])
		}
	}
	return []T{}
}

// Zip transposes its sequence arguments: the i-th group holds the i-th
// element of every sequence. The result is as long as the longest sequence;
// missing elements are nil. Arguments that are not slices or arrays are
// ignored.
//
//	arr.Zip([]string{"a", "b"}, []int{1, 2, 3})
//	// → [[a 1] [b 2] [<nil> 3]]
func Zip(seqs ...any) [][]any {
	inputs := make([][]any, 0, len(seqs))
	longest := 0
	for _, s := range seqs {
		values, ok := sequence(s)
		if !ok {
			continue
		}
		inputs = append(inputs, values)
		longest = max(longest, len(values))
	}
	if longest == 0 {
		return [][]any{}
	}

	out := make([][]any, longest)
	for i := range out {
		group := make([]any, len(inputs))
		for j, values := range inputs {
			if i < len(values) {
				group[j] = values[i]
			}
		}
		out[i] = group
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
