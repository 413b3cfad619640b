package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"health-companion/internal/platform/httpclient"
	"health-companion/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra el mismo proveedor.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var out struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	err := v.client.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    "/v1/tokens/verify",
		Headers: map[string]string{"Authorization": "Bearer " + token},
		In:      map[string]string{"token": token},
		Out:     &out,
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("remote verify failed: %w", providerError(err))
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.New("remote claims missing user id")
	}
	return auth.Claims{UserID: out.UserID, Email: strings.TrimSpace(out.Email)}, nil
}
