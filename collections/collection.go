package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/predicate"
)

// Collection is an immutable-by-default wrapper around a sequence of
// dynamically typed values, typically the elements of a decoded JSON/YAML
// document.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.From(object.Of("a", 1, "b", 2)) // values: [1 2]
//	c := collections.Empty()
//
// # Method chaining
//
// Methods taking a predicate accept any shape understood by predicate.Of:
//
//	names := collections.From(users).
//	    Filter([]any{"active", true}).
//	    Take(2).
//	    Map("user").
//	    All()
type Collection struct {
	items []any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New(items ...any) *Collection {
	dst := make([]any, len(items))
	copy(dst, items)
	return &Collection{items: dst}
}

// From creates a Collection from the values of collection (see
// [arr.Values]): a slice or array of any element type, an *object.Object or
// a map[string]any. Anything else gives an empty Collection.
func From(collection any) *Collection {
	values, ok := arr.Values(collection)
	if !ok {
		return Empty()
	}
	return New(values...)
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{items: []any{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection) All() []any {
	out := make([]any, len(c.items))
	copy(out, c.items)
	return out
}

// Value ends a chain and returns its items. It is an alias for
// [Collection.All].
func (c *Collection) Value() []any { return c.All() }

// ToJSON serialises the collection items to a JSON array. Objects keep
// their key order.
func (c *Collection) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection) Get(index int) (any, bool) {
	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	return c.items[index], true
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection) Each(fn func(any, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first item at or after from[0] that satisfies the
// predicate raw. See [arr.Find].
func (c *Collection) Find(raw any, from ...int) (any, bool) {
	return arr.Find(c.items, raw, from...)
}

// FindOrFail is like [Collection.Find] but reports a miss as
// [ErrNoMatchingItems].
func (c *Collection) FindOrFail(raw any, from ...int) (any, error) {
	item, ok := c.Find(raw, from...)
	if !ok {
		return nil, ErrNoMatchingItems
	}
	return item, nil
}

// First returns the first item, or the first item matching raw when given.
func (c *Collection) First(raw ...any) (any, bool) {
	if len(raw) > 0 {
		return c.Find(raw[0])
	}
	return c.Get(0)
}

// Last returns the last item, or the last item matching raw when given.
func (c *Collection) Last(raw ...any) (any, bool) {
	if len(raw) == 0 {
		return c.Get(len(c.items) - 1)
	}
	p := predicate.Of(raw[0])
	if p.IsAbsent() || !p.Valid() {
		return nil, false
	}
	for i := len(c.items) - 1; i >= 0; i-- {
		if p.Test(c.items[i]) {
			return c.items[i], true
		}
	}
	return nil, false
}

// Includes reports whether value is among the items, searching from
// fromIndex[0]. See [arr.Includes].
func (c *Collection) Includes(value any, fromIndex ...int) bool {
	return arr.Includes(c.items, value, fromIndex...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items that satisfy the
// predicate raw. See [arr.Filter].
func (c *Collection) Filter(raw any) *Collection {
	return New(arr.Filter(c.items, raw)...)
}

// Reject returns a new collection with the items that satisfy raw removed.
// It is the complement of [Collection.Filter]; an absent or invalid
// predicate rejects nothing.
func (c *Collection) Reject(raw any) *Collection {
	p := predicate.Of(raw)
	if p.IsAbsent() || !p.Valid() {
		return New(c.items...)
	}
	out := make([]any, 0, len(c.items))
	for _, item := range c.items {
		if !p.Test(item) {
			out = append(out, item)
		}
	}
	return &Collection{items: out}
}

// Map returns a new collection with each item transformed by iteratee, a
// func(any) any or a property name. See [arr.Map].
func (c *Collection) Map(iteratee any) *Collection {
	return New(arr.Map(c.items, iteratee)...)
}

// Compact returns a new collection without the falsy items.
func (c *Collection) Compact() *Collection {
	return &Collection{items: arr.Compact(c.items)}
}

// Zip returns a new collection of groups pairing the items of c with the
// elements of others, position by position. See [arr.Zip].
func (c *Collection) Zip(others ...any) *Collection {
	seqs := append([]any{c.items}, others...)
	groups := arr.Zip(seqs...)
	out := make([]any, len(groups))
	for i, g := range groups {
		out[i] = g
	}
	return &Collection{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a new collection with at most the first n items.
func (c *Collection) Take(n int) *Collection {
	return &Collection{items: arr.Take(c.items, n)}
}

// Drop returns a new collection without the first n items.
func (c *Collection) Drop(n int) *Collection {
	return New(arr.Drop(c.items, n)...)
}

// DropWhile returns a new collection without the leading items that
// satisfy raw. See [arr.DropWhile].
func (c *Collection) DropWhile(raw any) *Collection {
	return New(arr.DropWhile(c.items, raw)...)
}

// Chunk returns a new collection whose items are []any groups of size
// consecutive items. The last group may be shorter.
func (c *Collection) Chunk(size int) *Collection {
	chunks := arr.Chunk(c.items, size)
	out := make([]any, len(chunks))
	for i, chunk := range chunks {
		out[i] = chunk
	}
	return &Collection{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection) WhenEmpty(fn func(*Collection) *Collection) *Collection {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection) WhenNotEmpty(fn func(*Collection) *Collection) *Collection {
	return c.When(c.IsNotEmpty(), fn)
}
