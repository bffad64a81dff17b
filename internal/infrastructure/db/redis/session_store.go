package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

// Session hash fields. Exactly these three strings are persisted per visitor.
const (
	fieldToken    = "token"
	fieldUsername = "username"
	fieldRole     = "role"
)

// SessionStore persists visitor sessions as Redis hashes.
// Key format: session:<sid>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Load(ctx context.Context, sid string) (domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sid)).Result()
	if err != nil {
		return domain.Anonymous, fmt.Errorf("session load: %w", err)
	}
	if len(fields) == 0 {
		return domain.Anonymous, nil
	}
	return domain.Session{
		Token:    fields[fieldToken],
		Username: fields[fieldUsername],
		Role:     fields[fieldRole],
	}, nil
}

// Save writes all three fields in a single HSET so a concurrent Load can
// never observe a token without its role.
func (s *SessionStore) Save(ctx context.Context, sid string, sess domain.Session) error {
	key := s.key(sid)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldToken, sess.Token,
		fieldUsername, sess.Username,
		fieldRole, sess.Role,
	)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

// Ping reports whether the backing Redis answers; the readiness probe uses it.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
