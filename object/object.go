package object

import (
	"fmt"
	"sort"
	"strings"
)

// Object is a string-keyed mapping that remembers the order in which keys
// were first inserted.
//
// The zero value is an empty object ready to use. Object is not safe for
// concurrent mutation; concurrent reads are fine.
type Object struct {
	keys   []string
	values map[string]any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Object from pairs, in order. A repeated key keeps its first
// position and takes the last value.
func New(pairs ...Pair) *Object {
	o := &Object{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]any, len(pairs)),
	}
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return o
}

// Of creates an Object from alternating keys and values:
//
//	object.Of("user", "barney", "active", false)
//
// It panics if kv has odd length or a key is not a string, so it is meant
// for literals in code, not for untrusted input.
func Of(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("object: Of requires an even number of arguments")
	}
	o := &Object{
		keys:   make([]string, 0, len(kv)/2),
		values: make(map[string]any, len(kv)/2),
	}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("object: Of key at position %d is %T, not string", i, kv[i]))
		}
		o.Set(key, kv[i+1])
	}
	return o
}

// FromMap creates an Object from m with keys in sorted order.
// Nested values are kept as they are.
func FromMap(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := &Object{keys: keys, values: make(map[string]any, len(m))}
	for _, k := range keys {
		o.values[k] = m[k]
	}
	return o
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of keys. A nil Object has length 0.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return []string{}
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Values returns the values in key order.
func (o *Object) Values() []any {
	if o == nil {
		return []any{}
	}
	out := make([]any, len(o.keys))
	for i, k := range o.keys {
		out[i] = o.values[k]
	}
	return out
}

// Pairs returns the key/value pairs in key order.
func (o *Object) Pairs() []Pair {
	if o == nil {
		return []Pair{}
	}
	out := make([]Pair, len(o.keys))
	for i, k := range o.keys {
		out[i] = Pair{Key: k, Value: o.values[k]}
	}
	return out
}

// Get returns the value stored under key together with a presence flag.
// A key that is present with a nil value reports true.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is one of o's own keys.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Range calls fn for every key in order until fn returns false.
func (o *Object) Range(fn func(key string, value any) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key and returns o. A new key is appended; an
// existing key keeps its position.
func (o *Object) Set(key string, value any) *Object {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a shallow copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return New()
	}
	c := &Object{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]any, len(o.keys)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.values {
		c.values[k] = v
	}
	return c
}

// ToMap returns a shallow map[string]any copy of o.
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, o.Len())
	o.Range(func(k string, v any) bool {
		out[k] = v
		return true
	})
	return out
}

// String renders o as {k: v, ...} in key order.
// It implements [fmt.Stringer].
func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	o.Range(func(k string, v any) bool {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, v)
		i++
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// Plain converts v into a tree of map[string]any and []any by replacing
// every *Object, at any depth, with an unordered map. Other values are
// returned as they are. It is used where a consumer only understands
// native Go maps.
func Plain(v any) any {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil
		}
		out := make(map[string]any, x.Len())
		x.Range(func(k string, val any) bool {
			out[k] = Plain(val)
			return true
		})
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Plain(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Plain(val)
		}
		return out
	}
	return v
}
