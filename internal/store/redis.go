package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/resort-booking/internal/booking"
)

// DefaultSessionTTL is used when RedisStore is given a non-positive TTL.
const DefaultSessionTTL = 30 * time.Minute

// RedisStore keeps each session as a JSON string under
// "<prefix>:session:<id>". Every Save refreshes the TTL, so a session expires
// after TTL of inactivity.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore returns a RedisStore using rdb.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "booking"
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + ":session:" + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (booking.Session, error) {
	bs, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return booking.Session{}, booking.ErrSessionNotFound
		}
		return booking.Session{}, fmt.Errorf("redis get session: %w", err)
	}
	var s booking.Session
	if err := json.Unmarshal(bs, &s); err != nil {
		return booking.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s booking.Session) error {
	bs, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(s.ID), bs, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
