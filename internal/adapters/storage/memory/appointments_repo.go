package memory

import (
	"context"
	"errors"
	"strings"

	"health-companion/internal/domain/appointments"
)

type appointmentRepo struct {
	items *ordered[appointments.Appointment]
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{items: newOrdered[appointments.Appointment]()}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if !r.items.insert(a.ID, a) {
		return errors.New("appointment already exists")
	}
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	if !r.items.replace(a.ID, a) {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	if !r.items.remove(id) {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	a, ok := r.items.get(id)
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]appointments.Appointment, error) {
	return r.items.filter(func(a appointments.Appointment) bool {
		return a.OwnerUserID == ownerUserID
	}), nil
}
