package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lodash-utils/predicate"
)

const usersJSON = `[
  {"user": "barney", "age": 36, "active": false},
  {"user": "fred",   "age": 40, "active": false},
  {"user": "pebbles", "age": 1, "active": true}
]`

// runCLI executes the CLI with stdin and returns the exit code and both
// output streams.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"lodash"}, args...), strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate commands
// ─────────────────────────────────────────────────────────────────────────────

func TestFilterCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"where_bool", []string{"filter", "--where", "active=false"},
			`[{"user":"barney","age":36,"active":false},{"user":"fred","age":40,"active":false}]`},
		{"where_number", []string{"filter", "-w", "age=1"},
			`[{"user":"pebbles","age":1,"active":true}]`},
		{"where_string", []string{"filter", "--where", "user=fred"},
			`[{"user":"fred","age":40,"active":false}]`},
		{"where_combined", []string{"filter", "--where", "active=false", "--where", "age=40"},
			`[{"user":"fred","age":40,"active":false}]`},
		{"expr", []string{"filter", "--expr", "age > 38 || active"},
			`[{"user":"fred","age":40,"active":false},{"user":"pebbles","age":1,"active":true}]`},
		{"has", []string{"filter", "--has", "age"},
			`[{"user":"barney","age":36,"active":false},{"user":"fred","age":40,"active":false},{"user":"pebbles","age":1,"active":true}]`},
		{"has_missing", []string{"filter", "--has", "email"}, `[]`},
		{"no_criteria", []string{"filter"},
			`[{"user":"barney","age":36,"active":false},{"user":"fred","age":40,"active":false},{"user":"pebbles","age":1,"active":true}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, usersJSON, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestNamedPredicates(t *testing.T) {
	mixed := `[1, "a", null, {"k": 1}, [2], 0, true, ""]`
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"builtin_number", mixed, []string{"filter", "--is", "number"}, `[1, 0]`},
		{"builtin_object", mixed, []string{"filter", "--is", "object"}, `[{"k": 1}]`},
		{"builtin_array", mixed, []string{"filter", "--is", "array"}, `[[2]]`},
		{"builtins_combined", mixed, []string{"filter", "--is", "number", "--is", "truthy"}, `[1]`},
		{"reject_falsy", mixed, []string{"reject", "--is", "falsy"}, `[1, "a", {"k": 1}, [2], true]`},
		{"defined", usersJSON, []string{"filter", "--define", "senior=age > 38", "--is", "senior"},
			`[{"user":"fred","age":40,"active":false}]`},
		{"defined_with_comma", usersJSON, []string{"filter", "--define", `pair=user in ["barney", "fred"]`, "--is", "pair"},
			`[{"user":"barney","age":36,"active":false},{"user":"fred","age":40,"active":false}]`},
		{"where_with_comma", `[{"k": "a,b"}, {"k": "a"}]`, []string{"filter", "--where", "k=a,b"}, `[{"k": "a,b"}]`},
		{"defined_with_where", usersJSON, []string{"filter", "--define", "young=age < 38", "--is", "young", "--where", "active=true"},
			`[{"user":"pebbles","age":1,"active":true}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.input, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestRejectCommand(t *testing.T) {
	code, out, errOut := runCLI(t, usersJSON, "reject", "--where", "active=false")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `[{"user":"pebbles","age":1,"active":true}]`, out)
}

func TestDropWhileCommand(t *testing.T) {
	code, out, errOut := runCLI(t, usersJSON, "drop-while", "--where", "active=false")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `[{"user":"pebbles","age":1,"active":true}]`, out)

	code, out, _ = runCLI(t, usersJSON, "drop-while", "--has", "active")
	require.Equal(t, 0, code)
	assert.JSONEq(t, usersJSON, out)
}

func TestFindCommand(t *testing.T) {
	code, out, errOut := runCLI(t, usersJSON, "find", "--where", "active=false")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"user":"barney","age":36,"active":false}`, out)

	code, out, _ = runCLI(t, usersJSON, "find", "--where", "active=false", "--from", "1")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"user":"fred","age":40,"active":false}`, out)

	code, out, _ = runCLI(t, usersJSON, "find", "--has", "active", "--from", "-1")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"user":"pebbles","age":1,"active":true}`, out)
}

func TestFindCommandNoMatch(t *testing.T) {
	code, out, errOut := runCLI(t, usersJSON, "find", "--where", "user=wilma")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestFindCommandKeepsKeyOrder(t *testing.T) {
	code, out, _ := runCLI(t, `[{"z": 1, "a": 2}]`, "find", "--has", "z")
	require.Equal(t, 0, code)
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": 2\n}\n", out)
}

func TestCriteriaUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"where_without_equals", []string{"filter", "--where", "active"}, "want key=value"},
		{"where_empty_key", []string{"filter", "--where", "=1"}, "want key=value"},
		{"bad_expr", []string{"filter", "--expr", "age >"}, predicate.ErrInvalidExpression.Error()},
		{"unknown_name", []string{"filter", "--is", "adult"}, predicate.ErrUnknownPredicate.Error()},
		{"define_without_equals", []string{"filter", "--define", "adult", "--is", "adult"}, "want name=expression"},
		{"define_bad_expr", []string{"filter", "--define", "adult=age >", "--is", "adult"}, predicate.ErrInvalidExpression.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, usersJSON, tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.msg)
		})
	}
}

func TestScalar(t *testing.T) {
	assert.Equal(t, true, scalar("true"))
	assert.Equal(t, 36, scalar("36"))
	assert.Equal(t, 1.5, scalar("1.5"))
	assert.Equal(t, "fred", scalar("fred"))
	assert.Equal(t, "", scalar(""))
	assert.Equal(t, "a: b", scalar("a: b"))
	assert.Equal(t, "[1, 2]", scalar("[1, 2]"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Object commands
// ─────────────────────────────────────────────────────────────────────────────

func TestPickOmitCommands(t *testing.T) {
	const doc = `{"a": 1, "b": "2", "c": 3}`

	code, out, errOut := runCLI(t, doc, "pick", "c", "a")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"c\": 3\n}\n", out)

	code, out, _ = runCLI(t, doc, "omit", "a", "c")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"b":"2"}`, out)

	code, out, _ = runCLI(t, doc, "pick")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{}`, out)
}

func TestPickRequiresObject(t *testing.T) {
	code, out, errOut := runCLI(t, `[1, 2]`, "pick", "a")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "not an object")
}

func TestMergeCommand(t *testing.T) {
	base := writeFile(t, "base.json", `{"a": [{"b": 2}, {"d": 4}], "name": "base"}`)
	override := writeFile(t, "override.yaml", "a:\n  - c: 3\n  - e: 5\nname: override\n")

	code, out, errOut := runCLI(t, "", "merge", base, override)
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"a":[{"b":2,"c":3},{"d":4,"e":5}],"name":"override"}`, out)
}

func TestMergeCommandStdin(t *testing.T) {
	extra := writeFile(t, "extra.json", `{"y": 2}`)
	code, out, errOut := runCLI(t, `{"x": 1}`, "merge", "-", extra)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "{\n  \"x\": 1,\n  \"y\": 2\n}\n", out)
}

func TestMergeCommandErrors(t *testing.T) {
	code, _, errOut := runCLI(t, "", "merge")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "at least one file")

	list := writeFile(t, "list.json", `[1]`)
	code, _, errOut = runCLI(t, "", "merge", list)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "list.json")

	code, _, _ = runCLI(t, "", "merge", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 1, code)
}

func TestPairsCommand(t *testing.T) {
	code, out, errOut := runCLI(t, `{"b": 1, "a": [true]}`, "pairs")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `[["b",1],["a",[true]]]`, out)

	code, out, _ = runCLI(t, `[1, 2]`, "pairs")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `[]`, out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence commands
// ─────────────────────────────────────────────────────────────────────────────

func TestSequenceCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"chunk", `["a","b","c","d"]`, []string{"chunk", "--size", "3"}, `[["a","b","c"],["d"]]`},
		{"chunk_default", `[1,2]`, []string{"chunk"}, `[[1],[2]]`},
		{"take", `[1,2,3]`, []string{"take", "-n", "2"}, `[1,2]`},
		{"take_default", `[1,2,3]`, []string{"take"}, `[1]`},
		{"drop", `[1,2,3]`, []string{"drop", "-n", "2"}, `[3]`},
		{"drop_all", `[1,2,3]`, []string{"drop", "-n", "5"}, `[]`},
		{"compact", `[0,1,false,2,"",3,null]`, []string{"compact"}, `[1,2,3]`},
		{"map", usersJSON, []string{"map", "--prop", "user"}, `["barney","fred","pebbles"]`},
		{"map_missing", `[{"a":1},{}]`, []string{"map", "-p", "a"}, `[1,null]`},
		{"zip", `[["a","b"],[1,2,3]]`, []string{"zip"}, `[["a",1],["b",2],[null,3]]`},
		{"object_values", `{"x":1,"y":0}`, []string{"compact"}, `[1]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestMapRequiresProp(t *testing.T) {
	code, _, errOut := runCLI(t, `[1]`, "map")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--prop is required")
}

func TestCollectionCommandRejectsScalars(t *testing.T) {
	code, out, errOut := runCLI(t, `42`, "take")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "not a collection")
}

func TestIncludesCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"object_negative_from", `{"a":1,"b":2}`, []string{"includes", "--from", "-1", "2"}, "true\n"},
		{"sequence", `[1,2,3]`, []string{"includes", "3"}, "true\n"},
		{"sequence_from", `[1,2,3]`, []string{"includes", "--from", "2", "1"}, "false\n"},
		{"string", `"abcd"`, []string{"includes", "bc"}, "true\n"},
		{"falsy", `[0]`, []string{"includes", "0"}, "false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestIncludesRequiresOneValue(t *testing.T) {
	code, _, _ := runCLI(t, `[1]`, "includes")
	assert.Equal(t, 2, code)
	code, _, _ = runCLI(t, `[1]`, "includes", "1", "2")
	assert.Equal(t, 2, code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Global options
// ─────────────────────────────────────────────────────────────────────────────

func TestInputFile(t *testing.T) {
	path := writeFile(t, "users.yaml", "- user: barney\n  active: true\n- user: fred\n  active: false\n")
	code, out, errOut := runCLI(t, "", "-i", path, "filter", "--where", "active=true")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `[{"user":"barney","active":true}]`, out)
}

func TestInputFileMissing(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--input", filepath.Join(t.TempDir(), "nope.json"), "take")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "nope.json")
}

func TestInvalidDocument(t *testing.T) {
	code, _, errOut := runCLI(t, `{"a": [1, 2}`, "take")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "cannot decode")
}

func TestYAMLOutput(t *testing.T) {
	code, out, errOut := runCLI(t, `[1, 2, 3]`, "-f", "yaml", "take", "-n", "2")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "- 1\n- 2\n", out)

	code, out, errOut = runCLI(t, `{"b": 1, "a": 2, "c": 3}`, "--format", "yaml", "pick", "b", "a")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "b: 1\na: 2\n", out)
}

func TestUnknownFormat(t *testing.T) {
	code, out, errOut := runCLI(t, `[1]`, "-f", "xml", "take")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unknown format "xml"`)
}

func TestVerboseLogging(t *testing.T) {
	code, _, errOut := runCLI(t, usersJSON, "-v", "filter", "--where", "active=true")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "command=filter")
	assert.Contains(t, errOut, `KeyValue(\"active\", true)`)

	code, _, errOut = runCLI(t, usersJSON, "filter", "--where", "active=true")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

// ─────────────────────────────────────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────────────────────────────────────

func TestErrorTypes(t *testing.T) {
	err := usageErrorf("bad %s", "thing")
	var usageErr *usageError
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "bad thing", usageErr.Error())

	var exitErr *exitError
	require.True(t, errors.As(error(&exitError{code: 3}), &exitErr))
	assert.Equal(t, 3, exitErr.code)
}
