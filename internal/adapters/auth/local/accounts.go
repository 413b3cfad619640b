package local

import (
	"context"
	"time"
)

// Account es la credencial que guarda el proveedor local.
// PasswordHash es bcrypt; nunca sale del adapter.
type Account struct {
	ID           string
	Name         string
	Email        string // siempre en minúsculas
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountRepository persiste cuentas.
// Create devuelve auth.ErrEmailTaken si el email ya existe;
// Get*/Update devuelven auth.ErrUserNotFound si no hay cuenta.
type AccountRepository interface {
	Create(ctx context.Context, a Account) error
	Update(ctx context.Context, a Account) error
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
}
