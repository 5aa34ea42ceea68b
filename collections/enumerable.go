package collections

// Enumerable is the interface satisfied by [Collection].
//
// Accept Enumerable in your own functions so that consumers can substitute
// alternative implementations without depending on the concrete
// *Collection type.
type Enumerable interface {
	// All returns a copy of every item as a plain Go slice.
	All() []any

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(any, int))

	// Filter returns a new collection containing only the items that
	// satisfy the predicate raw.
	Filter(raw any) *Collection

	// Find returns the first item at or after from[0] that satisfies raw.
	Find(raw any, from ...int) (any, bool)

	// Includes reports whether value is among the items.
	Includes(value any, fromIndex ...int) bool

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Reject returns a new collection with the items satisfying raw
	// removed.
	Reject(raw any) *Collection
}

var _ Enumerable = (*Collection)(nil)
