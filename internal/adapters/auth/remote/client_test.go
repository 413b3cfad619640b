package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-companion/internal/ports/auth"
)

func newFakeBaaS(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "user@example.com" || in["password"] != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid login credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]string{"id": "1", "name": "John Doe", "email": in["email"], "phone_number": "555-123-4567"},
		})
	})
	mux.HandleFunc("/v1/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"msg":"User already registered"}`))
	})
	mux.HandleFunc("/v1/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v1/users/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if _, ok := in["email"]; ok {
			t.Errorf("email must not be sent when unchanged")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "1", "name": in["name"], "email": "user@example.com"})
	})
	mux.HandleFunc("/v1/users/1/password", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["current_password"] != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Current password is incorrect"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v1/auth/recover", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in["email"] {
		case "user@example.com":
			w.WriteHeader(http.StatusAccepted)
		case "down@example.com":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/v1/tokens/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "1", "email": "user@example.com"})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: newFakeBaaS(t).URL, APIKey: "key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClient_RequiresConfig(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "http://x"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_SignIn(t *testing.T) {
	c := newTestClient(t)

	s, err := c.SignIn(context.Background(), "user@example.com", "password")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if s.Token != "tok-1" || s.Identity.ID != "1" || s.Identity.PhoneNumber != "555-123-4567" {
		t.Fatalf("unexpected session %#v", s)
	}
}

func TestClient_SignIn_SurfacesProviderMessage(t *testing.T) {
	c := newTestClient(t)

	_, err := c.SignIn(context.Background(), "user@example.com", "nope")
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err.Error() != "Invalid login credentials" {
		t.Fatalf("expected provider message, got %q", err.Error())
	}
}

func TestClient_SignUp_Conflict(t *testing.T) {
	c := newTestClient(t)

	_, err := c.SignUp(context.Background(), "John", "user@example.com", "password")
	if !errors.Is(err, auth.ErrEmailTaken) || err.Error() != "User already registered" {
		t.Fatalf("expected ErrEmailTaken with message, got %v", err)
	}
}

func TestClient_SignOut(t *testing.T) {
	c := newTestClient(t)

	if err := c.SignOut(context.Background(), "tok-1"); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if err := c.SignOut(context.Background(), "stale"); err != nil {
		t.Fatalf("SignOut with stale token should be nil, got %v", err)
	}
	if err := c.SignOut(context.Background(), ""); err != nil {
		t.Fatalf("SignOut with empty token should be nil, got %v", err)
	}
}

func TestClient_UpdateProfile_SendsOnlyChangedFields(t *testing.T) {
	c := newTestClient(t)

	name := "John Updated"
	id, err := c.UpdateProfile(context.Background(), "1", auth.ProfileChanges{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if id.Name != name {
		t.Fatalf("unexpected identity %#v", id)
	}
}

func TestClient_ChangePassword(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.ChangePassword(ctx, "1", "password", "new-password"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	err := c.ChangePassword(ctx, "1", "wrong", "new-password")
	var perr *auth.ProviderError
	if !errors.Is(err, auth.ErrInvalidCredentials) || !errors.As(err, &perr) || perr.Message != "Current password is incorrect" {
		t.Fatalf("expected invalid credentials with message, got %v", err)
	}
}

func TestClient_RequestPasswordReset(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.RequestPasswordReset(ctx, "user@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if err := c.RequestPasswordReset(ctx, "nobody@example.com"); err != nil {
		t.Fatalf("unknown email must not be an error, got %v", err)
	}
	if err := c.RequestPasswordReset(ctx, "down@example.com"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestVerifier_Verify(t *testing.T) {
	v := NewVerifier(newTestClient(t))

	claims, err := v.Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "1" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims %#v", claims)
	}

	if _, err := v.Verify(context.Background(), "bad"); err == nil {
		t.Fatalf("expected error for bad token")
	}
	if _, err := v.Verify(context.Background(), " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}
