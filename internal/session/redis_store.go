package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "quiz:session:"
	reviewKeyPrefix  = "quiz:review:"
)

// redisClient is the subset of *redis.Client the store needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore shares sessions between engine instances. Sessions are stored
// as JSON; a zero ttl means they never expire.
type RedisStore struct {
	client redisClient
	ttl    time.Duration
}

func NewRedisStore(client redisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID int64) string { return fmt.Sprintf("%s%d", sessionKeyPrefix, userID) }
func reviewKey(userID int64) string  { return fmt.Sprintf("%s%d", reviewKeyPrefix, userID) }

func (r *RedisStore) Get(ctx context.Context, userID int64) (*domain.Session, bool, error) {
	var s domain.Session
	ok, err := r.getJSON(ctx, sessionKey(userID), &s)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &s, true, nil
}

func (r *RedisStore) Put(ctx context.Context, userID int64, s *domain.Session) error {
	return r.setJSON(ctx, sessionKey(userID), s)
}

// Delete uses the DEL count as the claim on a finished session, since the
// per-user locks of one engine instance do not reach the others.
func (r *RedisStore) Delete(ctx context.Context, userID int64) (bool, error) {
	n, err := r.client.Del(ctx, sessionKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("error deleting session for user %d: %w", userID, err)
	}
	return n > 0, nil
}

func (r *RedisStore) SaveReview(ctx context.Context, userID int64, rv *domain.Review) error {
	return r.setJSON(ctx, reviewKey(userID), rv)
}

func (r *RedisStore) LastReview(ctx context.Context, userID int64) (*domain.Review, bool, error) {
	var rv domain.Review
	ok, err := r.getJSON(ctx, reviewKey(userID), &rv)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &rv, true, nil
}

func (r *RedisStore) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading %s from redis: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("error decoding %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisStore) setJSON(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("error saving %s to redis: %w", key, err)
	}
	return nil
}
