package predicate

import "errors"

var (
	// ErrInvalidExpression is returned by [Compiler.Compile], [Expr] and
	// [MustExpr] when an expression does not compile.
	ErrInvalidExpression = errors.New("predicate: invalid expression")

	// ErrUnknownPredicate is returned by [Registry.Lookup] for a name that
	// is not bound.
	ErrUnknownPredicate = errors.New("predicate: unknown predicate")

	// ErrInvalidDefinition is returned by [Registry.Define] for an empty
	// name or a predicate that cannot match anything.
	ErrInvalidDefinition = errors.New("predicate: invalid definition")
)
