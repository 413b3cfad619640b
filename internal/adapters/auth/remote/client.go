package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"health-companion/internal/platform/httpclient"
	"health-companion/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("remote auth not configured")
	ErrUpstream      = errors.New("remote auth upstream error")
)

// Config del proveedor de auth hosteado.
// BaseURL y APIKey vienen de config/env.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Client habla con un backend-as-a-service de auth por HTTP/JSON.
// Implementa auth.Provider.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if strings.TrimSpace(cfg.BaseURL) == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	hc.Headers[h] = apiKey

	return &Client{http: hc}, nil
}

type userPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type sessionPayload struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	var out sessionPayload
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/auth/signin",
		In:     map[string]string{"email": email, "password": password},
		Out:    &out,
	})
	if err != nil {
		return auth.Session{}, providerError(err)
	}
	return toSession(out)
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (auth.Session, error) {
	var out sessionPayload
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/auth/signup",
		In:     map[string]string{"name": name, "email": email, "password": password},
		Out:    &out,
	})
	if err != nil {
		return auth.Session{}, providerError(err)
	}
	return toSession(out)
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    "/v1/auth/signout",
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		var herr *httpclient.HTTPError
		// token ya inválido del otro lado: la sesión igual quedó cerrada
		if errors.As(err, &herr) && herr.StatusCode == http.StatusUnauthorized {
			return nil
		}
		return providerError(err)
	}
	return nil
}

func (c *Client) UpdateProfile(ctx context.Context, userID string, changes auth.ProfileChanges) (auth.Identity, error) {
	in := map[string]string{}
	if changes.Name != nil {
		in["name"] = *changes.Name
	}
	if changes.Email != nil {
		in["email"] = *changes.Email
	}
	if changes.PhoneNumber != nil {
		in["phone_number"] = *changes.PhoneNumber
	}

	var out userPayload
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPatch,
		Path:   "/v1/users/" + url.PathEscape(userID),
		In:     in,
		Out:    &out,
	})
	if err != nil {
		return auth.Identity{}, providerError(err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return auth.Identity{}, fmt.Errorf("%w: response missing user id", ErrUpstream)
	}
	return toIdentity(out), nil
}

func (c *Client) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   "/v1/users/" + url.PathEscape(userID) + "/password",
		In: map[string]string{
			"current_password": currentPassword,
			"new_password":     newPassword,
		},
	})
	if err != nil {
		return providerError(err)
	}
	return nil
}

// RequestPasswordReset pide al proveedor que mande el código de recuperación.
// Un 404 (email desconocido) no se informa.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/auth/recover",
		In:     map[string]string{"email": strings.TrimSpace(email)},
	})
	if err != nil {
		var herr *httpclient.HTTPError
		if errors.As(err, &herr) && herr.StatusCode == http.StatusNotFound {
			return nil
		}
		return providerError(err)
	}
	return nil
}

func toSession(p sessionPayload) (auth.Session, error) {
	if strings.TrimSpace(p.User.ID) == "" || strings.TrimSpace(p.Token) == "" {
		return auth.Session{}, fmt.Errorf("%w: response missing user or token", ErrUpstream)
	}
	return auth.Session{Identity: toIdentity(p.User), Token: strings.TrimSpace(p.Token)}, nil
}

func toIdentity(u userPayload) auth.Identity {
	return auth.Identity{
		ID:          strings.TrimSpace(u.ID),
		Name:        strings.TrimSpace(u.Name),
		Email:       strings.TrimSpace(u.Email),
		PhoneNumber: strings.TrimSpace(u.PhoneNumber),
	}
}

// providerError traduce la respuesta del proveedor a los errores del port,
// conservando el mensaje legible.
func providerError(err error) error {
	var herr *httpclient.HTTPError
	if !errors.As(err, &herr) {
		return &auth.ProviderError{Err: fmt.Errorf("%w: %v", ErrUpstream, err)}
	}

	var base error
	switch herr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		base = auth.ErrInvalidCredentials
	case http.StatusConflict:
		base = auth.ErrEmailTaken
	case http.StatusNotFound:
		base = auth.ErrUserNotFound
	default:
		base = fmt.Errorf("%w: %v", ErrUpstream, herr)
	}
	return &auth.ProviderError{Message: herr.Message, Err: base}
}
