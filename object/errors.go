package object

import "errors"

// Sentinel errors returned by the document helpers.
//
// Use [errors.Is] for comparisons:
//
//	doc, err := object.ParseJSON(data)
//	if errors.Is(err, object.ErrDecode) {
//	    // not a valid document
//	}
var (
	// ErrDecode is returned when a JSON or YAML document cannot be parsed.
	ErrDecode = errors.New("object: cannot decode document")

	// ErrNotObject is returned when a document was expected to hold an
	// object at its root but holds something else.
	ErrNotObject = errors.New("object: document root is not an object")
)
