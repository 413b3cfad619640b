package appointments

import (
	"strings"
	"time"
)

// Status del turno. No hay máquina de estados: un update puede poner cualquier valor.
// @Enum upcoming, completed, cancelled
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusUpcoming:
		return StatusUpcoming, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled, "canceled":
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Specialty define las especialidades médicas soportadas.
type Specialty string

const (
	SpecialtyCardiology       Specialty = "Cardiology"
	SpecialtyDermatology      Specialty = "Dermatology"
	SpecialtyEndocrinology    Specialty = "Endocrinology"
	SpecialtyFamilyMedicine   Specialty = "Family Medicine"
	SpecialtyGastroenterology Specialty = "Gastroenterology"
	SpecialtyNeurology        Specialty = "Neurology"
	SpecialtyOncology         Specialty = "Oncology"
	SpecialtyPediatrics       Specialty = "Pediatrics"
	SpecialtyPsychiatry       Specialty = "Psychiatry"
	SpecialtyRheumatology     Specialty = "Rheumatology"
	SpecialtyGeneralPractice  Specialty = "General Practice"
)

var specialties = []Specialty{
	SpecialtyCardiology,
	SpecialtyDermatology,
	SpecialtyEndocrinology,
	SpecialtyFamilyMedicine,
	SpecialtyGastroenterology,
	SpecialtyNeurology,
	SpecialtyOncology,
	SpecialtyPediatrics,
	SpecialtyPsychiatry,
	SpecialtyRheumatology,
	SpecialtyGeneralPractice,
}

func ParseSpecialty(s string) (Specialty, bool) {
	s = strings.TrimSpace(s)
	for _, sp := range specialties {
		if strings.EqualFold(s, string(sp)) {
			return sp, true
		}
	}
	return "", false
}

// Appointment es un turno médico del usuario.
type Appointment struct {
	ID          string
	OwnerUserID string

	DoctorName string
	Specialty  Specialty

	Date     time.Time // solo fecha (UTC midnight)
	Time     string    // "10:30 AM" o "14:15"
	Location string
	Notes    string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
