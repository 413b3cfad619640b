package calendar

import (
	"context"
	"fmt"
	"time"

	"health-companion/internal/domain/appointments"
	"health-companion/internal/domain/medications"
	"health-companion/internal/platform/clock"
)

type MedicationLister interface {
	List(ctx context.Context, ownerUserID string, filter medications.ListFilter) ([]medications.Medication, error)
}

type AppointmentLister interface {
	List(ctx context.Context, ownerUserID string, filter appointments.ListFilter) ([]appointments.Appointment, error)
}

// Service arma las vistas de calendario a partir de los registros del usuario.
// Una medicación cuenta en el día de su start_date; un turno en su fecha.
type Service struct {
	meds  MedicationLister
	appts AppointmentLister
	now   func() time.Time
}

func NewService(meds MedicationLister, appts AppointmentLister) *Service {
	return &Service{meds: meds, appts: appts, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Today es el día por defecto de las vistas cuando no se elige fecha.
func (s *Service) Today() time.Time {
	return clock.Today(s.now())
}

// Agenda es lo que hay en un día concreto.
type Agenda struct {
	Date         time.Time
	Medications  []medications.Medication
	Appointments []appointments.Appointment
}

func (s *Service) Month(ctx context.Context, ownerUserID string, selected time.Time) (map[string]DayMarks, error) {
	entries, err := s.entries(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	return MarkDates(entries, selected), nil
}

func (s *Service) Day(ctx context.Context, ownerUserID string, day time.Time) (Agenda, error) {
	meds, appts, err := s.load(ctx, ownerUserID)
	if err != nil {
		return Agenda{}, err
	}

	key := DateKey(day)
	out := Agenda{
		Date:         day,
		Medications:  make([]medications.Medication, 0),
		Appointments: make([]appointments.Appointment, 0),
	}
	for _, m := range meds {
		if DateKey(m.StartDate) == key {
			out.Medications = append(out.Medications, m)
		}
	}
	for _, a := range appts {
		if DateKey(a.Date) == key {
			out.Appointments = append(out.Appointments, a)
		}
	}
	return out, nil
}

func (s *Service) WeekView(ctx context.Context, ownerUserID string, ref time.Time) (WeekView, error) {
	entries, err := s.entries(ctx, ownerUserID)
	if err != nil {
		return WeekView{}, err
	}

	highlighted := make(map[string]bool, len(entries))
	for _, e := range entries {
		highlighted[DateKey(e.Date)] = true
	}
	return buildWeekView(ref, highlighted), nil
}

func (s *Service) entries(ctx context.Context, ownerUserID string) ([]Entry, error) {
	meds, appts, err := s.load(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(meds)+len(appts))
	for _, m := range meds {
		out = append(out, Entry{Date: m.StartDate, Category: CategoryMedication})
	}
	for _, a := range appts {
		out = append(out, Entry{Date: a.Date, Category: CategoryAppointment})
	}
	return out, nil
}

func (s *Service) load(ctx context.Context, ownerUserID string) ([]medications.Medication, []appointments.Appointment, error) {
	meds, err := s.meds.List(ctx, ownerUserID, medications.ListFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("list medications: %w", err)
	}
	appts, err := s.appts.List(ctx, ownerUserID, appointments.ListFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("list appointments: %w", err)
	}
	return meds, appts, nil
}
