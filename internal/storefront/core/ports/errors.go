package ports

import "errors"

// Collaborator failures are classified into two buckets: validation-style
// (bad input, missing resource) and everything else, treated as transient.
// Adapters map transport responses onto these sentinels; the core matches
// with errors.Is and does not distinguish further.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)
