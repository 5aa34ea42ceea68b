// Package predicate normalises the many shapes a "which items?" argument
// can take into a single per-item test.
//
// # Shapes
//
// The array utilities accept a predicate as any of:
//
//	func(item any) bool { ... }          // called with each item
//	"active"                             // item has an own "active" property
//	[]any{"active", false}               // item.active strictly equals false
//	object.Of("age", 36, "active", true) // every listed property matches
//
// [Of] inspects the runtime shape exactly once and returns a [Predicate];
// nothing downstream branches on the raw argument again:
//
//	p := predicate.Of([]any{"active", false})
//	p.Kind()      // → KindKeyValue
//	p.Test(user)  // → true / false
//
// # Absent and invalid predicates
//
// A falsy argument (nil, "", false, 0) yields an absent predicate; each
// call site decides what "no predicate" means (arr.Filter returns the whole
// collection, arr.Find reports "not found"). A key/value sequence of any
// length other than two is invalid and makes every call site return its
// empty result. Other shapes are unsupported and simply match nothing.
//
// # Equality
//
// Values are compared with lang.StrictEqual: numbers by numeric value,
// other scalars with ==, and objects, slices and maps by identity. There is
// no deep comparison.
//
// # Expressions
//
// [Expr] compiles an expr-lang expression into a predicate evaluated
// against each item's properties:
//
//	adults := arr.Filter(users, predicate.MustExpr("age >= 18 && active"))
//
// Compiled programs are cached by a [Compiler] (an LRU bounded by
// [Config.CacheSize]).
//
// # Named predicates
//
// A [Registry] binds names to predicates. It starts with the type tests
// truthy, falsy, null, number, string, bool, object and array:
//
//	r := predicate.NewRegistry()
//	_ = r.Define("adult", predicate.MustExpr("age >= 18"))
//	p, err := r.Lookup("adult")
package predicate
