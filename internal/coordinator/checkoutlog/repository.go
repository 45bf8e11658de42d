package checkoutlog

import "context"

// Repository is the port for persisting checkout log entries. The
// coordinator depends on this abstraction, not on SQLite directly, so the
// implementation can be swapped for in-memory fakes in tests.
type Repository interface {
	// Save appends a new entry. The log is append-only, never an upsert.
	Save(ctx context.Context, entry *Entry) error
}
