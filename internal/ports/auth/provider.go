package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// ProviderError lleva el mensaje legible que devuelve el proveedor.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "auth provider error"
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Provider es el colaborador externo de autenticación.
// Cada llamada es one-shot: sin retry ni backoff.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignUp(ctx context.Context, name, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, userID string, changes ProfileChanges) (Identity, error)

	// ChangePassword exige la contraseña actual.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	// RequestPasswordReset no revela si el email existe: un email desconocido no es error.
	RequestPasswordReset(ctx context.Context, email string) error
}

// AuthVerifier resuelve un bearer token a Claims.
// Lo implementan el provider local (JWT propio) y el remoto (endpoint de verify).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
