package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=idempotency_store_interface.go -destination=mocks/mock_idempotency_store.go -package=mock_interfaces

// IIdempotencyStore remembers client-supplied request keys so a retried
// booking submission is not stored twice.
type IIdempotencyStore interface {
	// Reserve returns false when the key was already reserved within ttl.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
