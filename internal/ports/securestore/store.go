package securestore

import (
	"context"
	"time"
)

// Store es un key-value de strings para datos sensibles de sesión
// (p.ej. la copia serializada del usuario).
type Store interface {
	// Get devuelve (value, true, nil) si existe; ("", false, nil) si no.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// SetWithTTL guarda un valor que expira pasado ttl (ttl <= 0 = sin expiración).
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete es idempotente.
	Delete(ctx context.Context, key string) error
}
