package healthprofile

import "context"

type Repository interface {
	// GetHealthData devuelve ErrNotFound si el usuario nunca guardó su ficha.
	GetHealthData(ctx context.Context, ownerUserID string) (HealthData, error)
	// SaveHealthData crea o reemplaza la ficha completa.
	SaveHealthData(ctx context.Context, h HealthData) error

	CreateContact(ctx context.Context, c EmergencyContact) error
	UpdateContact(ctx context.Context, c EmergencyContact) error
	DeleteContact(ctx context.Context, id string) error
	GetContact(ctx context.Context, id string) (EmergencyContact, error)
	ListContacts(ctx context.Context, ownerUserID string) ([]EmergencyContact, error)
}
