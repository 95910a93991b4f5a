package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// RedisOTPStore is an OTPStore backed by Redis, for deployments where pending
// codes should survive a process restart. Expiry rides on key TTL.
type RedisOTPStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisOTPStore creates a RedisOTPStore against the given address.
func NewRedisOTPStore(addr string, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Ping checks the Redis connection.
func (s *RedisOTPStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisOTPStore) Put(ctx context.Context, email, code string) error {
	return s.rdb.Set(ctx, otpKeyPrefix+email, code, s.ttl).Err()
}

// Verify consumes the pending code with a single GETDEL so that concurrent
// attempts can never both observe it. A mismatched guess still burns the
// code; the client has to request a fresh one.
func (s *RedisOTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.GetDel(ctx, otpKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == code, nil
}
