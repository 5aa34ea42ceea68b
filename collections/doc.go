// Package collections provides a fluent Collection type that chains the
// helpers of package arr over a sequence of dynamically typed values.
//
// # Overview
//
// The central type is [Collection], a wrapper around []any whose methods
// return new collections:
//
//	names := collections.From(users).
//	    DropWhile([]any{"active", false}).
//	    Map("user").
//	    Value() // → [pebbles]
//
// Predicates are given in any shape accepted by predicate.Of: a
// func(any) bool, a property name, a [key, value] pair, a partial object or
// a compiled expression.
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Items themselves are shared, not copied.
//
// # Caller-typed operations
//
// [Reduce] and [GroupBy] let the caller pick the accumulator or key type and
// are therefore package-level functions. [KeyBy] indexes items by a property
// into an ordered object.
package collections
