package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v3"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/object"
	"github.com/hasbyte1/go-lodash-utils/predicate"
)

var errNotCollection = errors.New("lodash: input is not a collection")

// exitError reports a non-zero exit code for a command whose output is
// already complete.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError marks bad invocations; run maps it to exit code 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// logger returns the command's logger: warnings only, debug with --verbose.
func (a *app) logger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level})).
		With("command", cmd.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Input
// ─────────────────────────────────────────────────────────────────────────────

// readDocument decodes the --input file, or stdin, as JSON or YAML.
func (a *app) readDocument(cmd *cli.Command) (any, error) {
	path := cmd.String("input")
	doc, err := a.decodeFile(path)
	if err != nil {
		return nil, err
	}
	a.logger(cmd).Debug("decoded input", "source", sourceName(path), "type", fmt.Sprintf("%T", doc))
	return doc, nil
}

func (a *app) decodeFile(path string) (any, error) {
	if path == "" || path == "-" {
		return object.Decode(a.in)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := object.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// readCollection decodes the input and views it as a sequence of values.
func (a *app) readCollection(cmd *cli.Command) ([]any, error) {
	doc, err := a.readDocument(cmd)
	if err != nil {
		return nil, err
	}
	values, ok := arr.Values(doc)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", errNotCollection, doc)
	}
	return values, nil
}

// readObject decodes the input and requires a plain object.
func (a *app) readObject(cmd *cli.Command) (any, error) {
	doc, err := a.readDocument(cmd)
	if err != nil {
		return nil, err
	}
	if !object.IsPlain(doc) {
		return nil, fmt.Errorf("%w: got %T", object.ErrNotObject, doc)
	}
	return doc, nil
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// scalar parses a command-line value as a YAML scalar so that "true", "36"
// and "1.5" compare equal to decoded booleans and numbers. Anything that is
// not a scalar is kept as the raw string.
func scalar(raw string) any {
	if raw == "" {
		return raw
	}
	v, err := object.ParseYAML([]byte(raw))
	if err != nil {
		return raw
	}
	switch v.(type) {
	case nil, *object.Object, []any:
		return raw
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Criteria
// ─────────────────────────────────────────────────────────────────────────────

func criteriaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "where",
			Aliases: []string{"w"},
			Usage:   "match items whose key strictly equals value (key=value, repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "has",
			Usage: "match items that have the property (repeatable)",
		},
		&cli.StringFlag{
			Name:    "expr",
			Aliases: []string{"e"},
			Usage:   "match items for which the boolean expression holds",
		},
		&cli.StringSliceFlag{
			Name:  "is",
			Usage: "match items satisfying a named predicate (" + strings.Join(predicate.Builtins(), ", ") + ", or one from --define; repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "define",
			Usage: "name an expression for use with --is (name=expression, repeatable)",
		},
	}
}

// criteria combines the --where, --has, --expr and --is flags into one
// predicate. Without any of them the predicate is absent.
func criteria(cmd *cli.Command) (predicate.Predicate, error) {
	var parts []predicate.Predicate
	for _, w := range cmd.StringSlice("where") {
		key, value, ok := strings.Cut(w, "=")
		if !ok || key == "" {
			return predicate.Predicate{}, usageErrorf("--where %q: want key=value", w)
		}
		parts = append(parts, predicate.KeyValue(key, scalar(value)))
	}
	for _, name := range cmd.StringSlice("has") {
		if name == "" {
			return predicate.Predicate{}, usageErrorf("--has: empty property name")
		}
		parts = append(parts, predicate.Property(name))
	}
	if src := cmd.String("expr"); src != "" {
		p, err := predicate.Expr(src)
		if err != nil {
			return predicate.Predicate{}, &usageError{msg: err.Error()}
		}
		parts = append(parts, p)
	}
	if len(cmd.StringSlice("is")) > 0 {
		named, err := namedPredicates(cmd)
		if err != nil {
			return predicate.Predicate{}, err
		}
		parts = append(parts, named...)
	}
	return predicate.And(parts...), nil
}

// namedPredicates resolves every --is name against the built-ins and the
// --define bindings of this invocation.
func namedPredicates(cmd *cli.Command) ([]predicate.Predicate, error) {
	reg := predicate.NewRegistry()
	for _, d := range cmd.StringSlice("define") {
		name, src, ok := strings.Cut(d, "=")
		if !ok || name == "" || src == "" {
			return nil, usageErrorf("--define %q: want name=expression", d)
		}
		p, err := predicate.Expr(src)
		if err != nil {
			return nil, &usageError{msg: err.Error()}
		}
		if err := reg.Define(name, p); err != nil {
			return nil, &usageError{msg: err.Error()}
		}
	}
	var out []predicate.Predicate
	for _, name := range cmd.StringSlice("is") {
		p, err := reg.Lookup(name)
		if err != nil {
			return nil, usageErrorf("--is: %v (known: %s)", err, strings.Join(reg.Names(), ", "))
		}
		out = append(out, p)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Output
// ─────────────────────────────────────────────────────────────────────────────

// write renders v in the --format chosen on the command line.
func (a *app) write(cmd *cli.Command, v any) error {
	var (
		b   []byte
		err error
	)
	switch format := cmd.String("format"); format {
	case "json", "":
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case "yaml", "yml":
		b, err = yaml.Marshal(v)
	default:
		return usageErrorf("unknown format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = a.out.Write(b)
	return err
}

// writeAll writes a copy-safe result sequence; nil becomes an empty list.
func (a *app) writeAll(cmd *cli.Command, items []any) error {
	if items == nil {
		items = []any{}
	}
	return a.write(cmd, items)
}
