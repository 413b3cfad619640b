package medications

import (
	"strings"
	"time"
)

// Frequency define cada cuánto se toma la medicación.
// @Enum Once daily, Twice daily, Three times daily, Four times daily, Weekly, As needed
type Frequency string

const (
	FrequencyOnceDaily       Frequency = "Once daily"
	FrequencyTwiceDaily      Frequency = "Twice daily"
	FrequencyThreeTimesDaily Frequency = "Three times daily"
	FrequencyFourTimesDaily  Frequency = "Four times daily"
	FrequencyWeekly          Frequency = "Weekly"
	FrequencyAsNeeded        Frequency = "As needed"
)

var frequencies = []Frequency{
	FrequencyOnceDaily,
	FrequencyTwiceDaily,
	FrequencyThreeTimesDaily,
	FrequencyFourTimesDaily,
	FrequencyWeekly,
	FrequencyAsNeeded,
}

// Type define la forma farmacéutica.
// @Enum Tablet, Capsule, Liquid, Injection, Inhaler, Drops, Cream, Patch
type Type string

const (
	TypeTablet    Type = "Tablet"
	TypeCapsule   Type = "Capsule"
	TypeLiquid    Type = "Liquid"
	TypeInjection Type = "Injection"
	TypeInhaler   Type = "Inhaler"
	TypeDrops     Type = "Drops"
	TypeCream     Type = "Cream"
	TypePatch     Type = "Patch"
)

var types = []Type{
	TypeTablet,
	TypeCapsule,
	TypeLiquid,
	TypeInjection,
	TypeInhaler,
	TypeDrops,
	TypeCream,
	TypePatch,
}

// ParseFrequency acepta el valor sin importar mayúsculas y lo devuelve canónico.
func ParseFrequency(s string) (Frequency, bool) {
	s = strings.TrimSpace(s)
	for _, f := range frequencies {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return "", false
}

func ParseType(s string) (Type, bool) {
	s = strings.TrimSpace(s)
	for _, t := range types {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Medication es un registro de medicación de un usuario.
type Medication struct {
	ID          string
	OwnerUserID string

	Name      string
	Dosage    string    // "10mg", "1000 IU"
	Frequency Frequency // Once daily, ...
	TimeOfDay string    // "09:00 AM" o "21:00"
	Type      Type

	StartDate time.Time
	EndDate   *time.Time

	Instructions string

	RefillDate     *time.Time
	RefillReminder bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveOn indica si el tratamiento está vigente en el día dado.
func (m Medication) ActiveOn(day time.Time) bool {
	d := dateOnly(day)
	if dateOnly(m.StartDate).After(d) {
		return false
	}
	if m.EndDate != nil && dateOnly(*m.EndDate).Before(d) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
