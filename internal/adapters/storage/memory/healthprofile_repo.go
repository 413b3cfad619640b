package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"health-companion/internal/domain/healthprofile"
)

type healthProfileRepo struct {
	mu       sync.RWMutex
	health   map[string]healthprofile.HealthData
	contacts *ordered[healthprofile.EmergencyContact]
}

func NewHealthProfileRepo() healthprofile.Repository {
	return &healthProfileRepo{
		health:   make(map[string]healthprofile.HealthData),
		contacts: newOrdered[healthprofile.EmergencyContact](),
	}
}

func (r *healthProfileRepo) GetHealthData(ctx context.Context, ownerUserID string) (healthprofile.HealthData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.health[ownerUserID]
	if !ok {
		return healthprofile.HealthData{}, healthprofile.ErrNoHealthData
	}
	return cloneHealthData(h), nil
}

func (r *healthProfileRepo) SaveHealthData(ctx context.Context, h healthprofile.HealthData) error {
	if strings.TrimSpace(h.OwnerUserID) == "" {
		return errors.New("health data owner required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.health[h.OwnerUserID] = cloneHealthData(h)
	return nil
}

// Las listas se copian para que el caller no pueda mutar lo guardado.
func cloneHealthData(h healthprofile.HealthData) healthprofile.HealthData {
	h.Conditions = append([]healthprofile.Condition{}, h.Conditions...)
	h.Allergies = append([]healthprofile.Allergy{}, h.Allergies...)
	return h
}

func (r *healthProfileRepo) CreateContact(ctx context.Context, c healthprofile.EmergencyContact) error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("emergency contact id required")
	}
	if !r.contacts.insert(c.ID, c) {
		return errors.New("emergency contact already exists")
	}
	return nil
}

func (r *healthProfileRepo) UpdateContact(ctx context.Context, c healthprofile.EmergencyContact) error {
	if !r.contacts.replace(c.ID, c) {
		return healthprofile.ErrNotFound
	}
	return nil
}

func (r *healthProfileRepo) DeleteContact(ctx context.Context, id string) error {
	if !r.contacts.remove(id) {
		return healthprofile.ErrNotFound
	}
	return nil
}

func (r *healthProfileRepo) GetContact(ctx context.Context, id string) (healthprofile.EmergencyContact, error) {
	c, ok := r.contacts.get(id)
	if !ok {
		return healthprofile.EmergencyContact{}, healthprofile.ErrNotFound
	}
	return c, nil
}

func (r *healthProfileRepo) ListContacts(ctx context.Context, ownerUserID string) ([]healthprofile.EmergencyContact, error) {
	return r.contacts.filter(func(c healthprofile.EmergencyContact) bool {
		return c.OwnerUserID == ownerUserID
	}), nil
}
