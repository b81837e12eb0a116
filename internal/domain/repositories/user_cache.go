package repositories

import (
	"context"
	"time"

	"contact-service/internal/domain/entities"
)

// UserCache holds time-bounded snapshots of resolved users keyed by email.
// Get returns (nil, nil) on miss or expiry. Invalidate is a hook for callers
// that mutate a user while a snapshot may still be live; the resolver itself
// never calls it.
type UserCache interface {
	Get(ctx context.Context, email string) (*entities.User, error)
	Set(ctx context.Context, email string, user *entities.User, ttl time.Duration) error
	Invalidate(ctx context.Context, email string) error
}
