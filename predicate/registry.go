package predicate

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/object"
)

// Registry resolves predicates by name. A new Registry knows the built-in
// type tests listed by [Builtins]; [Registry.Define] adds more.
//
// All Registry methods are safe for concurrent use by multiple goroutines.
type Registry struct {
	mu    sync.RWMutex
	named map[string]Predicate
}

// NewRegistry returns a Registry holding the built-in predicates.
func NewRegistry() *Registry {
	r := &Registry{named: make(map[string]Predicate, len(builtins))}
	for name, fn := range builtins {
		r.named[name] = Predicate{kind: KindFunc, fn: fn, name: name}
	}
	return r
}

// Define binds name to the predicate raw classifies to (see [Of]),
// replacing any earlier binding, built-ins included. An empty name, or a
// raw that is absent, invalid or unsupported, is rejected with
// [ErrInvalidDefinition].
//
//	r.Define("adult", predicate.MustExpr("age >= 18"))
//	r.Define("barney", []any{"user", "barney"})
func (r *Registry) Define(name string, raw any) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	p := Of(raw)
	switch p.kind {
	case KindAbsent, KindInvalid, KindUnsupported:
		return fmt.Errorf("%w: %q is %s", ErrInvalidDefinition, name, p.kind)
	}
	p.name = name

	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[name] = p
	return nil
}

// Lookup returns the predicate bound to name, or [ErrUnknownPredicate]
// wrapped with the name.
func (r *Registry) Lookup(name string) (Predicate, error) {
	r.mu.RLock()
	p, ok := r.named[name]
	r.mu.RUnlock()
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return p, nil
}

// Names returns the bound names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtins returns the names every new [Registry] starts with, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var builtins = map[string]func(any) bool{
	"truthy": lang.Truthy,
	"falsy":  func(v any) bool { return !lang.Truthy(v) },
	"null":   func(v any) bool { return v == nil },
	"number": lang.IsNumber,
	"string": func(v any) bool {
		_, ok := v.(string)
		return ok
	},
	"bool": func(v any) bool {
		_, ok := v.(bool)
		return ok
	},
	"object": object.IsPlain,
	"array": func(v any) bool {
		if v == nil {
			return false
		}
		k := reflect.TypeOf(v).Kind()
		return k == reflect.Slice || k == reflect.Array
	},
}
