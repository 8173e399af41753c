package corvusclient

import "context"

// DatabaseClient defines the common interface by which statements get
// executed against a Corvus database. Concrete drivers (e.g. the HTTP
// driver in the httpclient package) implement it; the interactive
// Transaction type runs on top of it.
type DatabaseClient interface {
	// Execute executes one statement and returns its result set.
	Execute(ctx context.Context, statement Statement) (*ResultSet, error)

	// RawBatch executes an ordered batch of statements as one logical
	// unit. No result sets are returned; the first statement failure
	// fails the whole call.
	RawBatch(ctx context.Context, statements []Statement) error
}
