package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Appointment, error)
}

// View agrupa estados como las pestañas del cliente: upcoming vs past.
type View string

const (
	ViewAll      View = "all"
	ViewUpcoming View = "upcoming"
	ViewPast     View = "past"
)

type ListFilter struct {
	Query string
	View  View
}
