package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_RequiresValidBaseURL(t *testing.T) {
	if _, err := New("", time.Second); err == nil {
		t.Fatalf("expected error for empty base url")
	}
	if _, err := New("not a url", time.Second); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

func TestDoJSON_SendsHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/echo" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "k" || r.Header.Get("Authorization") != "Bearer t" {
			t.Errorf("missing headers: %v", r.Header)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Headers["X-Api-Key"] = "k"

	var out struct {
		Echo string `json:"echo"`
	}
	err = c.DoJSON(context.Background(), Request{
		Method:  http.MethodPost,
		Path:    "v1/echo",
		Headers: map[string]string{"Authorization": "Bearer t"},
		In:      map[string]string{"name": "john"},
		Out:     &out,
	})
	if err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out.Echo != "john" {
		t.Fatalf("unexpected response %#v", out)
	}
}

func TestDoJSON_ErrorCarriesMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/x"})

	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if herr.StatusCode != http.StatusUnauthorized || herr.Message != "Invalid login credentials" {
		t.Fatalf("unexpected error %#v", herr)
	}
}
