package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"health-companion/internal/adapters/auth/local"
	"health-companion/internal/ports/auth"
)

type accountRepo struct {
	mu      sync.RWMutex
	byID    map[string]local.Account
	byEmail map[string]string
}

func NewAccountRepo() local.AccountRepository {
	return &accountRepo{
		byID:    make(map[string]local.Account),
		byEmail: make(map[string]string),
	}
}

func (r *accountRepo) Create(ctx context.Context, a local.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("account id required")
	}
	if _, taken := r.byEmail[a.Email]; taken {
		return auth.ErrEmailTaken
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("account already exists")
	}
	r.byID[a.ID] = a
	r.byEmail[a.Email] = a.ID
	return nil
}

func (r *accountRepo) Update(ctx context.Context, a local.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[a.ID]
	if !ok {
		return auth.ErrUserNotFound
	}
	if prev.Email != a.Email {
		if owner, taken := r.byEmail[a.Email]; taken && owner != a.ID {
			return auth.ErrEmailTaken
		}
		delete(r.byEmail, prev.Email)
		r.byEmail[a.Email] = a.ID
	}
	r.byID[a.ID] = a
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (local.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return local.Account{}, auth.ErrUserNotFound
	}
	return a, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (local.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return local.Account{}, auth.ErrUserNotFound
	}
	return r.byID[id], nil
}
