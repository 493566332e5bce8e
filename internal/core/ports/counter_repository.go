package ports

import "context"

// CounterRepository provides atomically incrementing integer sequences,
// one per named counter. It is the sole mechanism preventing order id
// collisions under concurrent creation.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new
	// value, creating the counter on first use. Concurrent callers on the
	// same name each receive a distinct, strictly increasing value.
	Next(ctx context.Context, name string) (int, error)
}
