// Package lang holds the value semantics shared by every package in this
// module: truthiness, strict equality and SameValueZero equality over
// dynamically typed values.
//
// The rules follow the loose data model of decoded JSON/YAML documents
// rather than Go's type system. Numbers of any Go numeric kind compare by
// numeric value, so an int decoded from a document equals a float64 literal
// written in code:
//
//	lang.StrictEqual(1, 1.0)          // → true
//	lang.StrictEqual("1", 1)          // → false
//	lang.StrictEqual(math.NaN(), math.NaN())   // → false
//	lang.SameValueZero(math.NaN(), math.NaN()) // → true
//
// Integers compare exactly, even beyond the 2^53 range of float64; a float
// equals an integer only when it is integral and holds the same value.
//
// Reference values (slices, maps, pointers, funcs, chans) compare by
// identity, never by content. Zero-capacity slices have no identity of
// their own and never compare equal.
package lang

import (
	"math"
	"reflect"
)

// Truthy reports whether v counts as "true" in a boolean context.
//
// The falsy values are nil (including typed nil pointers, maps, slices,
// funcs, chans and interfaces), false, numeric zero of any kind, NaN and
// the empty string. Every other value, including an empty non-nil slice or
// map, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// StrictEqual reports whether a and b are the same value without any type
// coercion other than between numeric kinds. It never panics, even for
// values whose dynamic type is not comparable with ==.
func StrictEqual(a, b any) bool {
	if x, ok := numeric(a); ok {
		y, ok := numeric(b)
		return ok && x.equal(y)
	}
	if _, ok := numeric(b); ok {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		if ra.Cap() == 0 || rb.Cap() == 0 {
			return false
		}
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len() && ra.Cap() == rb.Cap()
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Comparable() && rb.Comparable() {
		return a == b
	}
	return false
}

// SameValueZero is [StrictEqual] except that NaN equals NaN.
// It is the equality used by membership tests such as arr.Includes.
func SameValueZero(a, b any) bool {
	if x, ok := number(a); ok && math.IsNaN(x) {
		y, ok := number(b)
		return ok && math.IsNaN(y)
	}
	return StrictEqual(a, b)
}

// IsNumber reports whether v holds a value of any Go numeric kind.
func IsNumber(v any) bool {
	_, ok := number(v)
	return ok
}

// number converts any numeric kind to float64.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case nil, string, bool:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// num is a number kept in its widest exact representation.
type num struct {
	kind reflect.Kind // reflect.Int64, reflect.Uint64 or reflect.Float64
	i    int64
	u    uint64
	f    float64
}

func numeric(v any) (num, bool) {
	switch x := v.(type) {
	case int:
		return num{kind: reflect.Int64, i: int64(x)}, true
	case int64:
		return num{kind: reflect.Int64, i: x}, true
	case float64:
		return num{kind: reflect.Float64, f: x}, true
	case nil, string, bool:
		return num{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return num{kind: reflect.Int64, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return num{kind: reflect.Uint64, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return num{kind: reflect.Float64, f: rv.Float()}, true
	}
	return num{}, false
}

func (x num) equal(y num) bool {
	if x.kind == reflect.Float64 && y.kind == reflect.Float64 {
		return x.f == y.f
	}
	if y.kind == reflect.Float64 || (x.kind == reflect.Uint64 && y.kind == reflect.Int64) {
		x, y = y, x
	}
	switch x.kind {
	case reflect.Float64:
		return floatEqualsInt(x.f, y)
	case reflect.Int64:
		if y.kind == reflect.Uint64 {
			return x.i >= 0 && uint64(x.i) == y.u
		}
		return x.i == y.i
	}
	return x.u == y.u
}

// floatEqualsInt reports whether f is integral and equal to the integer n.
func floatEqualsInt(f float64, n num) bool {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return false
	}
	if n.kind == reflect.Uint64 {
		return f >= 0 && f < 1<<64 && uint64(f) == n.u
	}
	return f >= -(1<<63) && f < 1<<63 && int64(f) == n.i
}
