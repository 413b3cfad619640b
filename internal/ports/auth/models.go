package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
}

// Identity es el registro de usuario que devuelve el proveedor de auth.
// El resto de la app solo guarda una copia (shadow) de este registro.
type Identity struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
}

// Session es el resultado de un sign-in / sign-up exitoso.
type Session struct {
	Identity Identity
	Token    string
}

// ProfileChanges es un patch parcial: nil = no tocar.
type ProfileChanges struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}
