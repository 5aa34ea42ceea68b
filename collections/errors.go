package collections

import "errors"

// ErrNoMatchingItems is returned by FindOrFail when no item satisfies the
// predicate.
var ErrNoMatchingItems = errors.New("collections: no items match the given condition")
