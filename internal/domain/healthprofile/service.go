package healthprofile

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
	ErrNotFound     = errors.New("emergency contact not found")
	// ErrNoHealthData lo devuelve el repo cuando el usuario todavía no guardó su ficha.
	ErrNoHealthData = errors.New("health data not found")
)

const (
	MaxHeightCm = 300
	MaxWeightKg = 500

	contactFieldsRequired = "Please fill in all required fields for each contact"
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

func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// HealthData nunca devuelve ErrNoHealthData: una ficha sin guardar sale vacía.
func (s *Service) HealthData(ctx context.Context, ownerUserID string) (HealthData, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return HealthData{}, ErrInvalidInput
	}
	h, err := s.repo.GetHealthData(ctx, ownerUserID)
	if errors.Is(err, ErrNoHealthData) {
		return HealthData{
			OwnerUserID: ownerUserID,
			Conditions:  []Condition{},
			Allergies:   []Allergy{},
		}, nil
	}
	if err != nil {
		return HealthData{}, err
	}
	return h, nil
}

// SaveHealthData reemplaza la ficha completa. Condiciones y alergias sin id
// (o con id repetido) reciben uno nuevo.
func (s *Service) SaveHealthData(ctx context.Context, ownerUserID string, h HealthData) (HealthData, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return HealthData{}, ErrInvalidInput
	}

	h.OwnerUserID = ownerUserID
	h, err := s.normalizeHealthData(h)
	if err != nil {
		return HealthData{}, err
	}
	h.UpdatedAt = s.now()

	if err := s.repo.SaveHealthData(ctx, h); err != nil {
		return HealthData{}, err
	}
	return h, nil
}

func (s *Service) normalizeHealthData(h HealthData) (HealthData, error) {
	if strings.TrimSpace(string(h.BloodType)) != "" {
		b, ok := ParseBloodType(string(h.BloodType))
		if !ok {
			return HealthData{}, invalid("blood_type", "must be one of A+, A-, B+, B-, AB+, AB-, O+, O-")
		}
		h.BloodType = b
	} else {
		h.BloodType = ""
	}

	if h.HeightCm < 0 || h.HeightCm > MaxHeightCm {
		return HealthData{}, invalid("height_cm", fmt.Sprintf("must be between 0 and %d", MaxHeightCm))
	}
	if h.WeightKg < 0 || h.WeightKg > MaxWeightKg {
		return HealthData{}, invalid("weight_kg", fmt.Sprintf("must be between 0 and %d", MaxWeightKg))
	}

	today := clock.Today(s.now())
	seen := make(map[string]bool)

	conditions := make([]Condition, 0, len(h.Conditions))
	for _, c := range h.Conditions {
		c.Name = strings.TrimSpace(c.Name)
		c.Notes = strings.TrimSpace(c.Notes)
		if c.Name == "" {
			return HealthData{}, invalid("conditions.name", "is required")
		}
		if c.DiagnosedDate != nil && c.DiagnosedDate.After(today) {
			return HealthData{}, invalid("conditions.diagnosed_date", "must not be in the future")
		}
		c.ID = uniqueID(seen, c.ID)
		conditions = append(conditions, c)
	}
	h.Conditions = conditions

	allergies := make([]Allergy, 0, len(h.Allergies))
	for _, a := range h.Allergies {
		a.Allergen = strings.TrimSpace(a.Allergen)
		a.Severity = strings.TrimSpace(a.Severity)
		a.Reaction = strings.TrimSpace(a.Reaction)
		if a.Allergen == "" {
			return HealthData{}, invalid("allergies.allergen", "is required")
		}
		a.ID = uniqueID(seen, a.ID)
		allergies = append(allergies, a)
	}
	h.Allergies = allergies

	h.Insurance = Insurance{
		Provider:     strings.TrimSpace(h.Insurance.Provider),
		PolicyNumber: strings.TrimSpace(h.Insurance.PolicyNumber),
		GroupNumber:  strings.TrimSpace(h.Insurance.GroupNumber),
	}
	return h, nil
}

func uniqueID(seen map[string]bool, id string) string {
	id = strings.TrimSpace(id)
	if id == "" || seen[id] {
		id = uuid.NewString()
	}
	seen[id] = true
	return id
}

type ContactInput struct {
	Name           string
	Relationship   string
	PrimaryPhone   string
	SecondaryPhone string
	Address        string
}

func (s *Service) AddContact(ctx context.Context, ownerUserID string, in ContactInput) (EmergencyContact, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return EmergencyContact{}, ErrInvalidInput
	}

	now := s.now()
	c, err := normalizeContact(EmergencyContact{
		ID:             uuid.NewString(),
		OwnerUserID:    ownerUserID,
		Name:           in.Name,
		Relationship:   in.Relationship,
		PrimaryPhone:   in.PrimaryPhone,
		SecondaryPhone: in.SecondaryPhone,
		Address:        in.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return EmergencyContact{}, err
	}

	if err := s.repo.CreateContact(ctx, c); err != nil {
		return EmergencyContact{}, err
	}
	return c, nil
}

// Contact devuelve ErrNotFound también cuando el contacto es de otro usuario.
func (s *Service) Contact(ctx context.Context, ownerUserID, id string) (EmergencyContact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return EmergencyContact{}, ErrNotFound
	}
	c, err := s.repo.GetContact(ctx, id)
	if err != nil {
		return EmergencyContact{}, err
	}
	if c.OwnerUserID != ownerUserID {
		return EmergencyContact{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) Contacts(ctx context.Context, ownerUserID string) ([]EmergencyContact, error) {
	return s.repo.ListContacts(ctx, ownerUserID)
}

func (s *Service) UpdateContact(ctx context.Context, ownerUserID, id string, in ContactInput) (EmergencyContact, error) {
	current, err := s.Contact(ctx, ownerUserID, id)
	if err != nil {
		return EmergencyContact{}, err
	}

	c, err := normalizeContact(EmergencyContact{
		ID:             current.ID,
		OwnerUserID:    current.OwnerUserID,
		Name:           in.Name,
		Relationship:   in.Relationship,
		PrimaryPhone:   in.PrimaryPhone,
		SecondaryPhone: in.SecondaryPhone,
		Address:        in.Address,
		CreatedAt:      current.CreatedAt,
		UpdatedAt:      s.now(),
	})
	if err != nil {
		return EmergencyContact{}, err
	}

	if err := s.repo.UpdateContact(ctx, c); err != nil {
		return EmergencyContact{}, err
	}
	return c, nil
}

func (s *Service) DeleteContact(ctx context.Context, ownerUserID, id string) error {
	if _, err := s.Contact(ctx, ownerUserID, id); err != nil {
		return err
	}
	return s.repo.DeleteContact(ctx, id)
}

// Nombre, relación y teléfono principal son obligatorios; el resto no.
func normalizeContact(c EmergencyContact) (EmergencyContact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Relationship = strings.TrimSpace(c.Relationship)
	c.PrimaryPhone = strings.TrimSpace(c.PrimaryPhone)
	c.SecondaryPhone = strings.TrimSpace(c.SecondaryPhone)
	c.Address = strings.TrimSpace(c.Address)

	switch {
	case c.Name == "":
		return EmergencyContact{}, invalid("name", contactFieldsRequired)
	case c.Relationship == "":
		return EmergencyContact{}, invalid("relationship", contactFieldsRequired)
	case c.PrimaryPhone == "":
		return EmergencyContact{}, invalid("primary_phone", contactFieldsRequired)
	}
	return c, nil
}
