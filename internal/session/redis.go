package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps session records in Redis with a TTL equal to the
// remaining token lifetime, so dead sessions disappear on their own.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb}, nil
}

func tokenKey(sid string) string { return "session:" + sid + ":token" }
func userKey(sid string) string  { return "session:" + sid + ":user" }

func (s *RedisStore) SetToken(ctx context.Context, sid, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKey(sid), token, ttl).Err()
}

func (s *RedisStore) Token(ctx context.Context, sid string) (string, error) {
	val, err := s.rdb.Get(ctx, tokenKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoRecord
	}
	return val, err
}

func (s *RedisStore) SetUser(ctx context.Context, sid string, raw []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, userKey(sid), raw, ttl).Err()
}

func (s *RedisStore) User(ctx context.Context, sid string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, userKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	return val, err
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, tokenKey(sid), userKey(sid)).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
