package predicate

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hasbyte1/go-lodash-utils/object"
)

// Config holds the runtime configuration of a [Compiler].
type Config struct {
	// CacheSize is the number of compiled expressions kept in memory.
	// Defaults to 256 if zero or negative.
	CacheSize int
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{CacheSize: 256}
}

// Compiler turns boolean expressions into predicates and caches the
// compiled programs by source text.
//
// All Compiler methods are safe for concurrent use by multiple goroutines.
type Compiler struct {
	cache *lru.Cache[string, *vm.Program]
}

// NewCompiler creates a Compiler with cfg.
func NewCompiler(cfg Config) (*Compiler, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultConfig().CacheSize
	}
	cache, err := lru.New[string, *vm.Program](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("predicate: create expression cache: %w", err)
	}
	return &Compiler{cache: cache}, nil
}

var defaultCompiler = func() *Compiler {
	c, err := NewCompiler(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}()

// Compile builds a predicate from an expr-lang boolean expression such as
//
//	age > 30 && active
//	user in ["barney", "fred"]
//
// When the item is a plain object its properties are the expression's
// variables; the item itself is always reachable as it (unless it has an
// own property of that name). Properties missing from an item evaluate to
// nil. An evaluation error or a non-bool result counts as "no match".
//
// Compile returns [ErrInvalidExpression] when source does not compile.
func (c *Compiler) Compile(source string) (Predicate, error) {
	prg, ok := c.cache.Get(source)
	if !ok {
		var err error
		prg, err = expr.Compile(source, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return Predicate{}, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, source, err)
		}
		c.cache.Add(source, prg)
	}
	return Predicate{
		kind:   KindFunc,
		source: source,
		fn: func(item any) bool {
			out, err := expr.Run(prg, env(item))
			if err != nil {
				return false
			}
			ok, _ := out.(bool)
			return ok
		},
	}, nil
}

// Len returns the number of cached programs.
func (c *Compiler) Len() int { return c.cache.Len() }

// Purge drops every cached program.
func (c *Compiler) Purge() { c.cache.Purge() }

// Expr compiles source with the package-level default [Compiler].
func Expr(source string) (Predicate, error) {
	return defaultCompiler.Compile(source)
}

// MustExpr is like [Expr] but panics if source does not compile.
// Use it for expressions written in code.
func MustExpr(source string) Predicate {
	p, err := Expr(source)
	if err != nil {
		panic(err)
	}
	return p
}

func env(item any) map[string]any {
	plain := object.Plain(item)
	vars, ok := plain.(map[string]any)
	if !ok {
		return map[string]any{"it": plain}
	}
	if _, taken := vars["it"]; !taken {
		vars["it"] = plain
	}
	return vars
}
