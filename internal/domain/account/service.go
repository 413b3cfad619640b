package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"health-companion/internal/ports/auth"
	"health-companion/internal/ports/securestore"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAuthentication = errors.New("authentication failed")
	ErrNotSignedIn    = errors.New("not signed in")
)

const (
	MinPasswordLength = 6
	// El cambio de contraseña desde el perfil pide una más larga que el registro.
	MinNewPasswordLength = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError describe un campo inválido de un formulario de auth.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// AuthError lleva el mensaje del proveedor para mostrarlo tal cual.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrAuthentication }

// Session es lo que ve el cliente tras sign-in / sign-up.
type Session struct {
	User  User
	Token string
}

// Service coordina el proveedor de auth y la copia del usuario en el secure store.
// Las validaciones de formulario se hacen antes de llamar al proveedor; no hay retry.
type Service struct {
	provider auth.Provider
	store    securestore.Store
}

func NewService(provider auth.Provider, store securestore.Store) *Service {
	return &Service{provider: provider, store: store}
}

func storeKey(userID string) string { return "user:" + userID }

func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, invalid("", "Please fill in all fields")
	}

	sess, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return Session{}, authError(err)
	}
	return s.remember(ctx, sess)
}

func (s *Service) SignUp(ctx context.Context, name, email, password, confirm string) (Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" || confirm == "" {
		return Session{}, invalid("", "Please fill in all fields")
	}
	if !emailPattern.MatchString(email) {
		return Session{}, invalid("email", "Please enter a valid email address")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return Session{}, invalid("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	if password != confirm {
		return Session{}, invalid("confirm_password", "Passwords do not match")
	}

	sess, err := s.provider.SignUp(ctx, name, email, password)
	if err != nil {
		return Session{}, authError(err)
	}
	return s.remember(ctx, sess)
}

// SignOut cierra la sesión en el proveedor y borra la copia local.
// La copia se borra aunque el proveedor falle.
func (s *Service) SignOut(ctx context.Context, userID, token string) error {
	providerErr := s.provider.SignOut(ctx, token)

	if strings.TrimSpace(userID) != "" {
		if err := s.store.Delete(ctx, storeKey(userID)); err != nil {
			return fmt.Errorf("clear stored user: %w", err)
		}
	}
	if providerErr != nil {
		return authError(providerErr)
	}
	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotSignedIn
	}
	if patch.empty() {
		return User{}, invalid("", "Nothing to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return User{}, invalid("name", "Name cannot be empty")
	}
	if patch.Email != nil && !emailPattern.MatchString(strings.TrimSpace(*patch.Email)) {
		return User{}, invalid("email", "Please enter a valid email address")
	}

	id, err := s.provider.UpdateProfile(ctx, userID, auth.ProfileChanges{
		Name:        patch.Name,
		Email:       patch.Email,
		PhoneNumber: patch.PhoneNumber,
	})
	if err != nil {
		return User{}, authError(err)
	}

	u := fromIdentity(id)
	if err := s.save(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, current, newPassword, confirm string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrNotSignedIn
	}
	if current == "" || newPassword == "" || confirm == "" {
		return invalid("", "Please fill in all password fields")
	}
	if newPassword != confirm {
		return invalid("confirm_password", "New passwords do not match")
	}
	if utf8.RuneCountInString(newPassword) < MinNewPasswordLength {
		return invalid("new_password", fmt.Sprintf("New password must be at least %d characters long", MinNewPasswordLength))
	}

	if err := s.provider.ChangePassword(ctx, userID, current, newPassword); err != nil {
		return authError(err)
	}
	return nil
}

// RequestPasswordReset valida el email y delega el envío del código al proveedor.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return invalid("email", "Please enter a valid email")
	}
	if err := s.provider.RequestPasswordReset(ctx, email); err != nil {
		return authError(err)
	}
	return nil
}

// Current devuelve la copia guardada del usuario.
func (s *Service) Current(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotSignedIn
	}

	raw, ok, err := s.store.Get(ctx, storeKey(userID))
	if err != nil {
		return User{}, fmt.Errorf("read stored user: %w", err)
	}
	if !ok {
		return User{}, ErrNotSignedIn
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, fmt.Errorf("decode stored user: %w", err)
	}
	return u, nil
}

func (s *Service) remember(ctx context.Context, sess auth.Session) (Session, error) {
	u := fromIdentity(sess.Identity)
	if err := s.save(ctx, u); err != nil {
		return Session{}, err
	}
	return Session{User: u, Token: sess.Token}, nil
}

func (s *Service) save(ctx context.Context, u User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(ctx, storeKey(u.ID), string(b)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// authError solo traduce fallas de autenticación; el resto (DB caída, red)
// sigue como error interno.
func authError(err error) error {
	var perr *auth.ProviderError
	isProvider := errors.As(err, &perr)
	if !isProvider &&
		!errors.Is(err, auth.ErrInvalidCredentials) &&
		!errors.Is(err, auth.ErrEmailTaken) &&
		!errors.Is(err, auth.ErrUserNotFound) {
		return fmt.Errorf("auth provider: %w", err)
	}

	msg := err.Error()
	if isProvider && strings.TrimSpace(perr.Message) != "" {
		msg = perr.Message
	}
	return &AuthError{Message: msg, Err: err}
}
