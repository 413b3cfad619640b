package memory

import (
	"context"
	"errors"
	"strings"

	"health-companion/internal/domain/medications"
)

type medicationRepo struct {
	items *ordered[medications.Medication]
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{items: newOrdered[medications.Medication]()}
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	if !r.items.insert(m.ID, m) {
		return errors.New("medication already exists")
	}
	return nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) error {
	if !r.items.replace(m.ID, m) {
		return medications.ErrNotFound
	}
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return medications.ErrNotFound
	}
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	m, ok := r.items.get(id)
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, nil
}

func (r *medicationRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	return r.items.filter(func(m medications.Medication) bool {
		return m.OwnerUserID == ownerUserID
	}), nil
}
