package repository

import (
	"context"
	"sync"
	"time"
)

// OTPStore holds pending email verification codes. Implementations expire
// entries after a TTL and consume them on successful verification.
type OTPStore interface {
	// Put stores a pending code for the email, overwriting any prior code
	// and resetting its TTL.
	Put(ctx context.Context, email, code string) error
	// Verify reports whether code matches the pending entry for email. The
	// entry is consumed on success and left untouched on failure; absent,
	// expired or already-consumed entries verify as false.
	Verify(ctx context.Context, email, code string) (bool, error)
}

// sweepInterval bounds how often expired entries are physically removed.
// Expired entries are already invisible to Verify before the sweep runs.
const sweepInterval = time.Minute

type otpEntry struct {
	code    string
	expires time.Time
}

// MemoryOTPStore is a process-local OTPStore backed by a mutex-guarded map.
type MemoryOTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]otpEntry
}

// NewMemoryOTPStore creates a MemoryOTPStore whose entries expire after ttl.
func NewMemoryOTPStore(ttl time.Duration) *MemoryOTPStore {
	s := &MemoryOTPStore{
		ttl:     ttl,
		pending: make(map[string]otpEntry),
	}
	go s.sweep()
	return s
}

func (s *MemoryOTPStore) Put(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[email] = otpEntry{code: code, expires: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryOTPStore) Verify(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pending[email]
	if !ok || time.Now().After(e.expires) || e.code != code {
		return false, nil
	}

	delete(s.pending, email)
	return true, nil
}

func (s *MemoryOTPStore) sweep() {
	for {
		time.Sleep(sweepInterval)
		now := time.Now()
		s.mu.Lock()
		for email, e := range s.pending {
			if now.After(e.expires) {
				delete(s.pending, email)
			}
		}
		s.mu.Unlock()
	}
}
