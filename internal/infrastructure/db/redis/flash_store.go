package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
)

const flashTTL = 10 * time.Minute

// FlashStore queues transient banners as a Redis list per session.
// Key format: flash:<sid>
type FlashStore struct {
	client *redis.Client
}

var _ ports.FlashStore = (*FlashStore)(nil)

func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

func (s *FlashStore) Push(ctx context.Context, sid string, flash domain.Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("flash encode: %w", err)
	}
	key := s.key(sid)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash push: %w", err)
	}
	return nil
}

// Drain returns all queued banners and removes them in one round-trip.
func (s *FlashStore) Drain(ctx context.Context, sid string) ([]domain.Flash, error) {
	key := s.key(sid)
	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("flash drain: %w", err)
	}

	raw := items.Val()
	flashes := make([]domain.Flash, 0, len(raw))
	for _, item := range raw {
		var f domain.Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue // skip corrupt entries, they are cosmetic
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

func (s *FlashStore) key(sid string) string {
	return "flash:" + sid
}
