package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idemTTL = 24 * time.Hour

// IdempotencyStore maps (owner, Idempotency-Key) pairs to the id of the note
// created by the first request carrying that key.
// Key format: idem:<owner_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the note id recorded for this owner and key, if any.
func (s *IdempotencyStore) Get(ctx context.Context, ownerID, key string) (string, bool, error) {
	noteID, err := s.client.Get(ctx, s.key(ownerID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency get: %w", err)
	}
	return noteID, true, nil
}

// Save records the note created under this key (expires after idemTTL).
func (s *IdempotencyStore) Save(ctx context.Context, ownerID, key, noteID string) error {
	return s.client.Set(ctx, s.key(ownerID, key), noteID, idemTTL).Err()
}

func (s *IdempotencyStore) key(ownerID, key string) string {
	return fmt.Sprintf("idem:%s:%s", ownerID, key)
}
