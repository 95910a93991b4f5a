package repository

import (
	"context"
	"os"
	"testing"
	"time"
)

// newRedisStore skips the test unless TEST_REDIS_ADDR points at a live server.
func newRedisStore(t *testing.T) *RedisOTPStore {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	store := NewRedisOTPStore(addr, time.Minute)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return store
}

func TestRedisOTPConsumedOnce(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "a@example.com", "1234"); err != nil {
		t.Fatalf("put: %v", err)
	}

	ok, err := store.Verify(ctx, "a@example.com", "1234")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("expected first verify to succeed")
	}

	ok, err = store.Verify(ctx, "a@example.com", "1234")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expected code to be consumed after first verify")
	}
}

func TestRedisOTPWrongCodeBurns(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "b@example.com", "1234"); err != nil {
		t.Fatalf("put: %v", err)
	}

	ok, err := store.Verify(ctx, "b@example.com", "9999")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched code to fail")
	}

	// The guess consumed the pending code, so even the right one fails now.
	ok, err = store.Verify(ctx, "b@example.com", "1234")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expected code to be gone after a mismatched attempt")
	}
}

func TestRedisOTPUnknownEmail(t *testing.T) {
	store := newRedisStore(t)

	ok, err := store.Verify(context.Background(), "nobody@example.com", "1234")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expected verify without a pending code to fail")
	}
}
