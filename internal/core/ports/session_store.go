package ports

import (
	"context"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

// SessionStore persists the visitor's session fields keyed by session id.
// Save must write all fields atomically so that a session can never be
// observed with a token but no role.
type SessionStore interface {
	Load(ctx context.Context, sid string) (domain.Session, error)
	Save(ctx context.Context, sid string, session domain.Session) error
	Delete(ctx context.Context, sid string) error
}

// FlashStore queues transient banners for a session until the next render.
type FlashStore interface {
	Push(ctx context.Context, sid string, flash domain.Flash) error
	// Drain returns queued banners and removes them.
	Drain(ctx context.Context, sid string) ([]domain.Flash, error)
}
