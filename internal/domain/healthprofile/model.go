package healthprofile

import (
	"strings"
	"time"
)

// BloodType es el grupo sanguíneo con factor Rh.
// @Enum A+, A-, B+, B-, AB+, AB-, O+, O-
type BloodType string

var bloodTypes = []BloodType{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// ParseBloodType acepta "ab+" o " O- " y devuelve el valor canónico.
func ParseBloodType(s string) (BloodType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, b := range bloodTypes {
		if s == string(b) {
			return b, true
		}
	}
	return "", false
}

type Condition struct {
	ID            string
	Name          string
	DiagnosedDate *time.Time
	Notes         string
}

type Allergy struct {
	ID       string
	Allergen string
	Severity string // "Mild", "Severe", texto libre
	Reaction string
}

type Insurance struct {
	Provider     string
	PolicyNumber string
	GroupNumber  string
}

// HealthData es la ficha médica de un usuario; hay una sola por owner.
type HealthData struct {
	OwnerUserID string

	BloodType BloodType // vacío = sin cargar
	HeightCm  float64
	WeightKg  float64

	Conditions []Condition
	Allergies  []Allergy
	Insurance  Insurance

	UpdatedAt time.Time
}

// EmergencyContact es una persona a contactar en caso de emergencia.
type EmergencyContact struct {
	ID          string
	OwnerUserID string

	Name           string
	Relationship   string
	PrimaryPhone   string
	SecondaryPhone string
	Address        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
