package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidArgument indicates an index argument that is absent where one is
	// required, not numeric, or outside the item range
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyDocument indicates a document without any sections
	ErrEmptyDocument = errors.New("document has no sections")

	// ErrUnsupportedFormat indicates a document format with no loader
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
