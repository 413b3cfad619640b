package memory

import (
	"context"
	"sync"
	"time"

	"health-companion/internal/ports/securestore"
)

type storedValue struct {
	value     string
	expiresAt time.Time // zero = no expira
}

// secureStore es el securestore.Store de dev: se pierde al reiniciar.
type secureStore struct {
	mu     sync.RWMutex
	values map[string]storedValue
	now    func() time.Time
}

func NewSecureStore() securestore.Store {
	return newSecureStore()
}

func newSecureStore() *secureStore {
	return &secureStore{values: make(map[string]storedValue), now: time.Now}
}

func (s *secureStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if !v.expiresAt.IsZero() && !s.now().Before(v.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.values[key]; ok && cur.expiresAt.Equal(v.expiresAt) {
			delete(s.values, key)
		}
		s.mu.Unlock()
		return "", false, nil
	}
	return v.value, true, nil
}

func (s *secureStore) Set(ctx context.Context, key, value string) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

func (s *secureStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := storedValue{value: value}
	if ttl > 0 {
		v.expiresAt = s.now().Add(ttl)
	}
	s.values[key] = v
	return nil
}

func (s *secureStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
