package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/travel-atlas/internal/session"
)

const defaultTTL = 24 * time.Hour

// Cache wraps a Redis client and provides typed get/save/delete for session state.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 24-hour TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// NewCacheWithTTL constructs a Cache whose entries expire after ttl.
// A non-positive ttl falls back to the default.
func NewCacheWithTTL(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// key returns the Redis key for the given session id.
func key(id string) string {
	return "session:" + id
}

// Create stores state under a fresh session id and returns the id.
func (c *Cache) Create(ctx context.Context, state session.State) (string, error) {
	id := uuid.NewString()
	if err := c.Save(ctx, id, state); err != nil {
		return "", err
	}
	return id, nil
}

// Get retrieves a session's state.
// Returns nil, nil on a miss or an expired session (not an error).
func (c *Cache) Get(ctx context.Context, id string) (*session.State, error) {
	val, err := c.client.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for session %s: %w", id, err)
	}

	var state session.State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("unmarshaling session %s: %w", id, err)
	}

	return &state, nil
}

// Save stores state and restarts the session's TTL.
func (c *Cache) Save(ctx context.Context, id string, state session.State) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling session %s: %w", id, err)
	}

	if err := c.client.Set(ctx, key(id), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for session %s: %w", id, err)
	}

	return nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete for session %s: %w", id, err)
	}
	return nil
}
