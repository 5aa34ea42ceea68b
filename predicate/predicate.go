package predicate

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/lang"
	"github.com/hasbyte1/go-lodash-utils/object"
)

// Kind identifies the shape a [Predicate] was built from.
type Kind int

const (
	// KindAbsent is the zero Kind: no predicate was supplied.
	KindAbsent Kind = iota
	// KindFunc wraps a func(any) bool (including compiled expressions).
	KindFunc
	// KindProperty tests for the presence of an own property.
	KindProperty
	// KindKeyValue tests one property for strict equality with a value.
	KindKeyValue
	// KindPartial tests every property of a partial object.
	KindPartial
	// KindInvalid marks a malformed key/value sequence. Call sites return
	// their empty result for it.
	KindInvalid
	// KindUnsupported marks a value of a shape no predicate is built from.
	// It matches nothing.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindFunc:
		return "Func"
	case KindProperty:
		return "Property"
	case KindKeyValue:
		return "KeyValue"
	case KindPartial:
		return "Partial"
	case KindInvalid:
		return "Invalid"
	case KindUnsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Predicate is a normalised per-item test. Build one with [Of] or with the
// shape-specific constructors; the zero value is an absent predicate.
//
// A Predicate is immutable and safe for concurrent use as long as the
// function or values it was built from are.
type Predicate struct {
	kind   Kind
	fn     func(any) bool
	key    string
	value  any
	fields []object.Pair
	source string
	name   string
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// Of classifies raw once and returns the matching Predicate:
//
//   - a falsy value (nil, "", false, 0, nil func, nil *Object) → absent
//   - a Predicate or *Predicate → itself
//   - func(any) bool → the function
//   - a non-empty string → property presence, see [Property]
//   - a slice or array [key, value] with a string key → [KeyValue];
//     any other length or key type → invalid
//   - a plain object (*object.Object, map[string]any) → [Partial]
//   - anything else → unsupported (matches nothing)
func Of(raw any) Predicate {
	switch v := raw.(type) {
	case Predicate:
		return v
	case *Predicate:
		if v != nil {
			return *v
		}
	}
	if !lang.Truthy(raw) {
		return Predicate{}
	}

	switch v := raw.(type) {
	case func(any) bool:
		return Func(v)
	case string:
		return Property(v)
	}
	if object.IsPlain(raw) {
		return Partial(raw)
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Len() != 2 {
			return Predicate{kind: KindInvalid}
		}
		key, ok := rv.Index(0).Interface().(string)
		if !ok {
			return Predicate{kind: KindInvalid}
		}
		return KeyValue(key, rv.Index(1).Interface())
	}
	return Predicate{kind: KindUnsupported, value: raw}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Func wraps fn. A nil fn gives an absent predicate.
func Func(fn func(item any) bool) Predicate {
	if fn == nil {
		return Predicate{}
	}
	return Predicate{kind: KindFunc, fn: fn}
}

// Property matches items that have name as an own property, whatever its
// value. An empty name gives an absent predicate.
func Property(name string) Predicate {
	if name == "" {
		return Predicate{}
	}
	return Predicate{kind: KindProperty, key: name}
}

// KeyValue matches items whose own property key strictly equals value
// (see [lang.StrictEqual]).
func KeyValue(key string, value any) Predicate {
	return Predicate{kind: KindKeyValue, key: key, value: value}
}

// Partial matches items that have every property of obj with a strictly
// equal value. Nested objects and slices are compared by identity. An empty
// obj matches every plain object; a value that is not a plain object gives
// an unsupported predicate.
func Partial(obj any) Predicate {
	fields, ok := object.Entries(obj)
	if !ok {
		return Predicate{kind: KindUnsupported, value: obj}
	}
	return Predicate{kind: KindPartial, fields: fields}
}

// And matches items that satisfy every one of ps. Absent predicates are
// skipped: with none left the result is absent, with one it is that
// predicate. Any invalid member makes the result invalid.
func And(ps ...Predicate) Predicate {
	var all []Predicate
	for _, p := range ps {
		if !p.Valid() {
			return Predicate{kind: KindInvalid}
		}
		if !p.IsAbsent() {
			all = append(all, p)
		}
	}
	switch len(all) {
	case 0:
		return Predicate{}
	case 1:
		return all[0]
	}
	return Predicate{kind: KindFunc, fn: func(item any) bool {
		for _, p := range all {
			if !p.Test(item) {
				return false
			}
		}
		return true
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Evaluation
// ─────────────────────────────────────────────────────────────────────────────

// Test reports whether item satisfies p. Absent, invalid and unsupported
// predicates match nothing.
func (p Predicate) Test(item any) bool {
	switch p.kind {
	case KindFunc:
		return p.fn(item)
	case KindProperty:
		return object.HasOwn(item, p.key)
	case KindKeyValue:
		return matches(item, p.key, p.value)
	case KindPartial:
		if !object.IsPlain(item) {
			return false
		}
		for _, f := range p.fields {
			if !matches(item, f.Key, f.Value) {
				return false
			}
		}
		return true
	}
	return false
}

func matches(item any, key string, want any) bool {
	got, ok := object.Lookup(item, key)
	return ok && lang.StrictEqual(got, want)
}

// Kind returns the shape p was built from.
func (p Predicate) Kind() Kind { return p.kind }

// IsAbsent reports whether no predicate was supplied.
func (p Predicate) IsAbsent() bool { return p.kind == KindAbsent }

// Valid reports whether p is well formed. Only a malformed key/value
// sequence is invalid; call sites return their empty result for it.
func (p Predicate) Valid() bool { return p.kind != KindInvalid }

// String describes p for diagnostics.
func (p Predicate) String() string {
	if p.name != "" {
		return fmt.Sprintf("Named(%q)", p.name)
	}
	switch p.kind {
	case KindFunc:
		if p.source != "" {
			return fmt.Sprintf("Expr(%q)", p.source)
		}
		return "Func"
	case KindProperty:
		return fmt.Sprintf("Property(%q)", p.key)
	case KindKeyValue:
		return fmt.Sprintf("KeyValue(%q, %v)", p.key, p.value)
	case KindPartial:
		return fmt.Sprintf("Partial(%v)", object.New(p.fields...))
	case KindUnsupported:
		return fmt.Sprintf("Unsupported(%T)", p.value)
	}
	return p.kind.String()
}
