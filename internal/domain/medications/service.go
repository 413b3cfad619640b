package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-companion/internal/platform/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
)

// ValidationError dice qué campo falló. errors.Is(err, ErrInvalidInput) sigue funcionando.
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

// WithClock reemplaza el reloj (el router comparte uno con calendar).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

type AddInput struct {
	Name           string
	Dosage         string
	Frequency      string
	TimeOfDay      string
	Type           string
	StartDate      time.Time
	EndDate        *time.Time
	Instructions   string
	RefillDate     *time.Time
	RefillReminder bool
}

func (s *Service) Add(ctx context.Context, ownerUserID string, in AddInput) (Medication, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Medication{}, ErrInvalidInput
	}

	now := s.now()
	m := Medication{
		ID:             uuid.NewString(),
		OwnerUserID:    ownerUserID,
		Name:           strings.TrimSpace(in.Name),
		Dosage:         strings.TrimSpace(in.Dosage),
		Frequency:      Frequency(strings.TrimSpace(in.Frequency)),
		TimeOfDay:      strings.TrimSpace(in.TimeOfDay),
		Type:           Type(strings.TrimSpace(in.Type)),
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Instructions:   strings.TrimSpace(in.Instructions),
		RefillDate:     in.RefillDate,
		RefillReminder: in.RefillReminder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	m, err := normalize(m)
	if err != nil {
		return Medication{}, err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// GetByID devuelve ErrNotFound también cuando el registro es de otro usuario.
func (s *Service) GetByID(ctx context.Context, ownerUserID, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if m.OwnerUserID != ownerUserID {
		return Medication{}, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, ownerUserID string, filter ListFilter) ([]Medication, error) {
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	items = Search(items, filter.Query)

	switch filter.Status {
	case "", StatusAll:
		return items, nil
	case StatusActive, StatusUpcoming, StatusEnded:
	default:
		return nil, invalid("status", "must be all, active, upcoming or ended")
	}

	today := clock.Today(s.now())
	out := make([]Medication, 0, len(items))
	for _, m := range items {
		if statusOf(m, today) == filter.Status {
			out = append(out, m)
		}
	}
	return out, nil
}

// Update reemplaza el registro completo (por id). CreatedAt y owner no se tocan.
func (s *Service) Update(ctx context.Context, ownerUserID string, m Medication) (Medication, error) {
	current, err := s.GetByID(ctx, ownerUserID, m.ID)
	if err != nil {
		return Medication{}, err
	}

	m.OwnerUserID = current.OwnerUserID
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = s.now()

	m, err = normalize(m)
	if err != nil {
		return Medication{}, err
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	if _, err := s.GetByID(ctx, ownerUserID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// DueRefills lista los registros con recordatorio de reposición activo
// cuya fecha cae entre hoy y hoy+within.
func (s *Service) DueRefills(ctx context.Context, ownerUserID string, within time.Duration) ([]Medication, error) {
	if within < 0 {
		return nil, invalid("within", "must not be negative")
	}
	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	from := clock.Today(s.now())
	to := from.Add(within)

	out := make([]Medication, 0)
	for _, m := range items {
		if !m.RefillReminder || m.RefillDate == nil {
			continue
		}
		d := dateOnly(*m.RefillDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func statusOf(m Medication, today time.Time) StatusFilter {
	switch {
	case m.ActiveOn(today):
		return StatusActive
	case dateOnly(m.StartDate).After(dateOnly(today)):
		return StatusUpcoming
	default:
		return StatusEnded
	}
}

// normalize valida y canoniza los enums.
func normalize(m Medication) (Medication, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Dosage = strings.TrimSpace(m.Dosage)

	if m.Name == "" {
		return Medication{}, invalid("name", "is required")
	}
	if m.Dosage == "" {
		return Medication{}, invalid("dosage", "is required")
	}

	f, ok := ParseFrequency(string(m.Frequency))
	if !ok {
		return Medication{}, invalid("frequency", "unknown value")
	}
	m.Frequency = f

	t, ok := ParseType(string(m.Type))
	if !ok {
		return Medication{}, invalid("type", "unknown value")
	}
	m.Type = t

	if m.StartDate.IsZero() {
		return Medication{}, invalid("start_date", "is required")
	}
	if m.EndDate != nil && dateOnly(*m.EndDate).Before(dateOnly(m.StartDate)) {
		return Medication{}, invalid("end_date", "must not be before start_date")
	}
	return m, nil
}
