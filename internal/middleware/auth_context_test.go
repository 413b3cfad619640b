package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-companion/internal/ports/auth"
)

type stubVerifier struct{}

func (stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "u-1", Email: "u@example.com"}, nil
}

func claimsSeen(t *testing.T, v auth.AuthVerifier, header, value string) (auth.Claims, bool) {
	t.Helper()

	var (
		got auth.Claims
		ok  bool
	)
	h := AuthContext(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestAuthContext_DevMode(t *testing.T) {
	c, ok := claimsSeen(t, nil, DebugUserHeader, "dev-user")
	if !ok || c.UserID != "dev-user" {
		t.Fatalf("expected dev claims, got %#v %v", c, ok)
	}
	if _, ok := claimsSeen(t, nil, "", ""); ok {
		t.Fatalf("expected no claims without header")
	}
}

func TestAuthContext_VerifierMode(t *testing.T) {
	c, ok := claimsSeen(t, stubVerifier{}, "Authorization", "Bearer good")
	if !ok || c.UserID != "u-1" {
		t.Fatalf("expected verified claims, got %#v %v", c, ok)
	}
	if _, ok := claimsSeen(t, stubVerifier{}, "Authorization", "Bearer bad"); ok {
		t.Fatalf("expected no claims for invalid token")
	}
	if _, ok := claimsSeen(t, stubVerifier{}, DebugUserHeader, "dev-user"); ok {
		t.Fatalf("debug header must be ignored when a verifier is configured")
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer  abc": "abc",
		"Basic abc":   "",
		"Bearer":      "",
		"":            "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		if got := BearerToken(req); got != want {
			t.Fatalf("header %q: expected %q, got %q", header, want, got)
		}
	}
}
