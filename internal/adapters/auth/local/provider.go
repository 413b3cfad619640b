package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-companion/internal/ports/auth"
	"health-companion/internal/ports/securestore"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	revokedKeyPrefix = "revoked:"
	resetKeyPrefix   = "reset:"

	// ResetCodeTTL es la vida del código de recuperación de contraseña.
	ResetCodeTTL = 15 * time.Minute
)

type Options struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Provider implementa auth.Provider y auth.AuthVerifier sin servicio externo:
// cuentas en AccountRepository, contraseñas bcrypt y sesiones JWT.
// El sign-out revoca el jti del token en el store de revocaciones.
type Provider struct {
	accounts AccountRepository
	revoked  securestore.Store
	tokens   *tokenIssuer
	now      func() time.Time
}

func NewProvider(accounts AccountRepository, revoked securestore.Store, opts Options) (*Provider, error) {
	secret := strings.TrimSpace(opts.Secret)
	if secret == "" {
		return nil, errors.New("local auth: secret is required")
	}
	if accounts == nil || revoked == nil {
		return nil, errors.New("local auth: accounts and revocation store are required")
	}
	issuer := strings.TrimSpace(opts.Issuer)
	if issuer == "" {
		issuer = DefaultIssuer
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	p := &Provider{
		accounts: accounts,
		revoked:  revoked,
		now:      time.Now,
	}
	p.tokens = &tokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		leeway: DefaultLeeway,
		now:    func() time.Time { return p.now() },
	}
	return p, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	acc, err := p.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.Session{}, auth.ErrInvalidCredentials
		}
		return auth.Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return auth.Session{}, auth.ErrInvalidCredentials
	}
	return p.session(acc)
}

func (p *Provider) SignUp(ctx context.Context, name, email, password string) (auth.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return auth.Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := p.now().UTC()
	acc := Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.accounts.Create(ctx, acc); err != nil {
		return auth.Session{}, err
	}
	return p.session(acc)
}

// SignOut revoca el token. Un token vacío o ya inválido no es error.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	claims, err := p.tokens.parse(token)
	if err != nil {
		return nil
	}
	// La entrada vive lo mismo que el token (más el leeway del parse).
	ttl := p.tokens.leeway
	if claims.ExpiresAt != nil {
		ttl += claims.ExpiresAt.Sub(p.now())
	}
	if ttl <= 0 {
		return nil
	}
	return p.revoked.SetWithTTL(ctx, revokedKeyPrefix+claims.ID, claims.Subject, ttl)
}

func (p *Provider) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	acc, err := p.accounts.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(currentPassword)) != nil {
		return &auth.ProviderError{Message: "Current password is incorrect", Err: auth.ErrInvalidCredentials}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	acc.PasswordHash = string(hash)
	acc.UpdatedAt = p.now().UTC()
	return p.accounts.Update(ctx, acc)
}

// RequestPasswordReset guarda un código de un solo uso en el store
// (reset:<accountID>) para el paso de verificación. El envío del código
// por email queda del lado del canal de notificaciones.
func (p *Provider) RequestPasswordReset(ctx context.Context, email string) error {
	acc, err := p.accounts.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, auth.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return p.revoked.SetWithTTL(ctx, resetKeyPrefix+acc.ID, randomHexID(3), ResetCodeTTL)
}

func (p *Provider) UpdateProfile(ctx context.Context, userID string, changes auth.ProfileChanges) (auth.Identity, error) {
	acc, err := p.accounts.GetByID(ctx, userID)
	if err != nil {
		return auth.Identity{}, err
	}

	if changes.Name != nil {
		acc.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.PhoneNumber != nil {
		acc.PhoneNumber = strings.TrimSpace(*changes.PhoneNumber)
	}
	if changes.Email != nil {
		email := normalizeEmail(*changes.Email)
		if email != acc.Email {
			other, err := p.accounts.GetByEmail(ctx, email)
			switch {
			case err == nil && other.ID != acc.ID:
				return auth.Identity{}, auth.ErrEmailTaken
			case err != nil && !errors.Is(err, auth.ErrUserNotFound):
				return auth.Identity{}, err
			}
			acc.Email = email
		}
	}
	acc.UpdatedAt = p.now().UTC()

	if err := p.accounts.Update(ctx, acc); err != nil {
		return auth.Identity{}, err
	}
	return identityOf(acc), nil
}

// Verify implementa auth.AuthVerifier.
func (p *Provider) Verify(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := p.tokens.parse(token)
	if err != nil {
		return auth.Claims{}, err
	}

	_, revoked, err := p.revoked.Get(ctx, revokedKeyPrefix+claims.ID)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{UserID: claims.Subject, Email: claims.Email}, nil
}

func (p *Provider) session(acc Account) (auth.Session, error) {
	token, err := p.tokens.issue(acc.ID, acc.Email)
	if err != nil {
		return auth.Session{}, err
	}
	return auth.Session{Identity: identityOf(acc), Token: token}, nil
}

func identityOf(acc Account) auth.Identity {
	return auth.Identity{
		ID:          acc.ID,
		Name:        acc.Name,
		Email:       acc.Email,
		PhoneNumber: acc.PhoneNumber,
	}
}

func normalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
