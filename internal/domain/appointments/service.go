package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Formatos de hora aceptados ("14:15", "2:15 PM").
var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type BookInput struct {
	DoctorName string
	Specialty  string
	Date       time.Time
	Time       string
	Location   string
	Notes      string
	Status     string // opcional, default upcoming
}

func (s *Service) Book(ctx context.Context, ownerUserID string, in BookInput) (Appointment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Appointment{}, ErrInvalidInput
	}

	status := Status(in.Status)
	if strings.TrimSpace(in.Status) == "" {
		status = StatusUpcoming
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		DoctorName:  in.DoctorName,
		Specialty:   Specialty(in.Specialty),
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	a, err := normalize(a)
	if err != nil {
		return Appointment{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, ownerUserID, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.OwnerUserID != ownerUserID {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, ownerUserID string, filter ListFilter) ([]Appointment, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	items = Search(items, filter.Query)

	switch filter.View {
	case "", ViewAll:
		return items, nil
	case ViewUpcoming, ViewPast:
	default:
		return nil, invalid("view", "must be all, upcoming or past")
	}

	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		upcoming := a.Status == StatusUpcoming
		if (filter.View == ViewUpcoming) == upcoming {
			out = append(out, a)
		}
	}
	return out, nil
}

// Update reemplaza el turno completo; el status se puede sobrescribir libremente.
func (s *Service) Update(ctx context.Context, ownerUserID string, a Appointment) (Appointment, error) {
	current, err := s.GetByID(ctx, ownerUserID, a.ID)
	if err != nil {
		return Appointment{}, err
	}

	a.OwnerUserID = current.OwnerUserID
	a.CreatedAt = current.CreatedAt
	a.UpdatedAt = s.now()
	a.Notes = strings.TrimSpace(a.Notes)

	a, err = normalize(a)
	if err != nil {
		return Appointment{}, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	if _, err := s.GetByID(ctx, ownerUserID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func normalize(a Appointment) (Appointment, error) {
	a.DoctorName = strings.TrimSpace(a.DoctorName)
	a.Location = strings.TrimSpace(a.Location)
	a.Time = strings.TrimSpace(a.Time)

	if a.DoctorName == "" {
		return Appointment{}, invalid("doctor_name", "is required")
	}

	sp, ok := ParseSpecialty(string(a.Specialty))
	if !ok {
		return Appointment{}, invalid("specialty", "unknown value")
	}
	a.Specialty = sp

	if a.Date.IsZero() {
		return Appointment{}, invalid("date", "is required")
	}
	if !validTime(a.Time) {
		return Appointment{}, invalid("time", "must be HH:MM or H:MM AM/PM")
	}
	if a.Location == "" {
		return Appointment{}, invalid("location", "is required")
	}

	st, ok := ParseStatus(string(a.Status))
	if !ok {
		return Appointment{}, invalid("status", "must be upcoming, completed or cancelled")
	}
	a.Status = st

	return a, nil
}

func validTime(v string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, strings.ToUpper(v)); err == nil {
			return true
		}
	}
	return false
}
