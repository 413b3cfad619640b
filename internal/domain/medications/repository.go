package medications

import "context"

// Repository guarda los registros en orden de inserción.
// Update y Delete devuelven ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error)
}

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusUpcoming StatusFilter = "upcoming"
	StatusEnded    StatusFilter = "ended"
)

type ListFilter struct {
	Query  string
	Status StatusFilter
}
