package object_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lodash-utils/object"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// jsonOf renders v as compact JSON; for *Object the key order is preserved,
// so string equality also checks ordering.
func jsonOf(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestOfKeepsInsertionOrder(t *testing.T) {
	o := object.Of("b", 1, "a", 2, "c", 3)
	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
	assert.Equal(t, []any{1, 2, 3}, o.Values())
	assert.Equal(t, 3, o.Len())
}

func TestOfPanicsOnBadArguments(t *testing.T) {
	assert.Panics(t, func() { object.Of("a") })
	assert.Panics(t, func() { object.Of(1, 2) })
}

func TestNewRepeatedKeyKeepsFirstPosition(t *testing.T) {
	o := object.New(object.Pair{Key: "a", Value: 1}, object.Pair{Key: "b", Value: 2}, object.Pair{Key: "a", Value: 3})
	assert.Equal(t, `{"a":3,"b":2}`, jsonOf(t, o))
}

func TestFromMapSortsKeys(t *testing.T) {
	o := object.FromMap(map[string]any{"z": 1, "a": 2, "m": 3})
	assert.Equal(t, []string{"a", "m", "z"}, o.Keys())
}

func TestSetGetHasDelete(t *testing.T) {
	var o object.Object
	o.Set("x", nil).Set("y", 2)

	v, ok := o.Get("x")
	assert.True(t, ok, "a key holding nil is still present")
	assert.Nil(t, v)
	assert.True(t, o.Has("y"))
	assert.False(t, o.Has("z"))

	o.Set("x", 1)
	assert.Equal(t, []string{"x", "y"}, o.Keys(), "re-setting keeps position")

	assert.True(t, o.Delete("x"))
	assert.False(t, o.Delete("x"))
	assert.Equal(t, []string{"y"}, o.Keys())
}

func TestNilObjectIsEmpty(t *testing.T) {
	var o *object.Object
	assert.Equal(t, 0, o.Len())
	assert.Empty(t, o.Keys())
	assert.False(t, o.Has("a"))
	assert.Equal(t, "{}", o.String())
	assert.Equal(t, 0, o.Clone().Len())
}

func TestRangeStopsEarly(t *testing.T) {
	o := object.Of("a", 1, "b", 2, "c", 3)
	var seen []string
	o.Range(func(k string, _ any) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestCloneIsShallow(t *testing.T) {
	inner := object.Of("n", 1)
	o := object.Of("inner", inner)
	c := o.Clone()
	c.Set("extra", true)
	assert.False(t, o.Has("extra"))

	got, _ := c.Get("inner")
	assert.Same(t, inner, got)
}

func TestPlainConvertsNestedObjects(t *testing.T) {
	o := object.Of("a", object.Of("b", []any{object.Of("c", 1)}))
	want := map[string]any{"a": map[string]any{"b": []any{map[string]any{"c": 1}}}}
	assert.Equal(t, want, object.Plain(o))
	assert.Equal(t, 5, object.Plain(5))
}

func TestString(t *testing.T) {
	assert.Equal(t, "{a: 1, b: x}", object.Of("a", 1, "b", "x").String())
	assert.Equal(t, "(a, 1)", object.Pair{Key: "a", Value: 1}.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

func TestIsPlain(t *testing.T) {
	var nilObj *object.Object
	assert.True(t, object.IsPlain(object.New()))
	assert.True(t, object.IsPlain(map[string]any{}))
	assert.False(t, object.IsPlain(nilObj))
	assert.False(t, object.IsPlain([]any{}))
	assert.False(t, object.IsPlain(map[string]int{}))
	assert.False(t, object.IsPlain(struct{}{}))
	assert.False(t, object.IsPlain("a"))
}

func TestIsMergeable(t *testing.T) {
	assert.True(t, object.IsMergeable(object.New()))
	assert.True(t, object.IsMergeable([]any{}))
	assert.False(t, object.IsMergeable([]int{1}))
	assert.False(t, object.IsMergeable(1))
	assert.False(t, object.IsMergeable(nil))
}

func TestLookup(t *testing.T) {
	v, ok := object.Lookup(object.Of("a", false), "a")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	v, ok = object.Lookup(map[string]any{"a": 1}, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = object.Lookup(struct{ A int }{1}, "A")
	assert.False(t, ok)
	assert.False(t, object.HasOwn(nil, "a"))
}

func TestEntriesOfMapAreSorted(t *testing.T) {
	entries, ok := object.Entries(map[string]any{"b": 2, "a": 1})
	require.True(t, ok)
	assert.Equal(t, []object.Pair{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, entries)

	_, ok = object.Entries([]any{1})
	assert.False(t, ok)
}
