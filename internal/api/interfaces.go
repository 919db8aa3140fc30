package api

import (
	"context"

	"github.com/neexbeast/travel-atlas/internal/session"
)

// SessionStore defines the session persistence needed by handlers.
// Get returns nil, nil when the session does not exist or has expired.
type SessionStore interface {
	Create(ctx context.Context, state session.State) (string, error)
	Get(ctx context.Context, id string) (*session.State, error)
	Save(ctx context.Context, id string, state session.State) error
	Delete(ctx context.Context, id string) error
}
