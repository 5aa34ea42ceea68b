package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lodash-utils/collections"
	"github.com/hasbyte1/go-lodash-utils/object"
)

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n any, _ int) string {
		if acc == "" {
			return strconv.Itoa(n.(int))
		}
		return acc + "," + strconv.Itoa(n.(int))
	}, "")
	assert.Equal(t, "1,2,3", s)

	sum := collections.Reduce(collections.From(users()), func(acc int, u any, _ int) int {
		v, _ := object.Lookup(u, "age")
		return acc + v.(int)
	}, 0)
	assert.Equal(t, 77, sum)

	assert.Equal(t, 7, collections.Reduce(collections.Empty(), func(acc int, _ any, _ int) int { return acc + 1 }, 7))
}

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy(collections.From(users()), func(u any) bool {
		v, _ := object.Lookup(u, "active")
		return v == true
	})
	require.Len(t, groups, 2)
	assert.Equal(t, []any{"barney", "fred"}, groups[false].Map("user").All())
	assert.Equal(t, []any{"pebbles"}, groups[true].Map("user").All())
}

func TestKeyByFunc(t *testing.T) {
	u := users()
	byName := collections.KeyBy(collections.From(append(u, object.Of("id", 1))), "user")
	assert.Equal(t, []string{"barney", "fred", "pebbles"}, byName.Keys())
	got, _ := byName.Get("fred")
	assert.Same(t, u[1], got)
}

func TestKeyByLastWins(t *testing.T) {
	a := object.Of("k", "x", "n", 1)
	b := object.Of("k", "y", "n", 2)
	c := object.Of("k", "x", "n", 3)
	byK := collections.KeyBy(collections.New(a, b, c), "k")
	assert.Equal(t, []string{"x", "y"}, byK.Keys())
	got, _ := byK.Get("x")
	assert.Same(t, c, got)
}
