package types

import "errors"

// Core errors. All create operations either complete fully or leave
// the tree unchanged and return one of these (possibly wrapped).
var (
	// ErrIdentifierExhausted indicates the identifier generator ran out
	// of attempts without finding an unused value.
	ErrIdentifierExhausted = errors.New("identifier space exhausted")

	// ErrInvalidPath indicates a destination path with an empty or
	// blank segment.
	ErrInvalidPath = errors.New("invalid group path")

	// ErrMissingField indicates an entry was requested without one of
	// the required fields (title, username, password).
	ErrMissingField = errors.New("missing required entry field")

	// ErrInvalidIdentifier indicates a stored identifier that does not
	// decode to exactly 16 bytes.
	ErrInvalidIdentifier = errors.New("invalid identifier encoding")
)
