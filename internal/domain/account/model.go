package account

import "health-companion/internal/ports/auth"

// User es la copia local (shadow) del usuario que devuelve el proveedor de auth.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ProfilePatch: nil = no tocar.
type ProfilePatch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

func (p ProfilePatch) empty() bool {
	return p.Name == nil && p.Email == nil && p.PhoneNumber == nil
}

func fromIdentity(id auth.Identity) User {
	return User{
		ID:          id.ID,
		Name:        id.Name,
		Email:       id.Email,
		PhoneNumber: id.PhoneNumber,
	}
}
