package collections

import "github.com/hasbyte1/go-lodash-utils/object"

// This file contains package-level generic functions for operations whose
// result type is chosen by the caller. Methods cannot introduce their own
// type parameters, so these are stand-alone functions that compose with
// method chains:
//
//	total := collections.Reduce(
//	    collections.From(orders).Filter([]any{"paid", true}),
//	    func(acc float64, o any, _ int) float64 { ... }, 0.0,
//	)

// Reduce folds the items of c into a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n any, _ int) int { return acc + n.(int) }, 0)
func Reduce[U any](c *Collection, fn func(U, any, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// GroupBy groups items by the comparable key K extracted by fn. Groups keep
// the original item order.
//
//	byRole := collections.GroupBy(users, func(u any) string {
//	    role, _ := object.Lookup(u, "role")
//	    return fmt.Sprint(role)
//	})
func GroupBy[K comparable](c *Collection, fn func(any) K) map[K]*Collection {
	groups := make(map[K]*Collection)
	for _, item := range c.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// KeyBy builds an ordered object keyed by the property key of every item.
// Items lacking the property are skipped; when several items share a key
// the last one wins, at the position of the first.
//
//	byID := collections.KeyBy(users, "user")
func KeyBy(c *Collection, key string) *object.Object {
	out := object.New()
	for _, item := range c.items {
		v, ok := object.Lookup(item, key)
		if !ok {
			continue
		}
		if s, isString := v.(string); isString {
			out.Set(s, item)
		}
	}
	return out
}
