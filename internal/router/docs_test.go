package router_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"health-companion/internal/router"

	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"
)

// Cada ruta montada tiene que figurar en /swagger con el mismo método.
func TestSwaggerDoc_CoversEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	routes, ok := router.NewRouter(router.Options{}).(chi.Routes)
	if !ok {
		t.Fatalf("router does not expose chi.Routes")
	}

	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == "/health" || strings.HasPrefix(route, "/swagger") {
			return nil
		}
		path := strings.TrimSuffix(route, "/")
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("%s %s is not documented", method, path)
			return nil
		}
		if _, ok := ops[strings.ToLower(method)]; !ok {
			t.Errorf("%s %s is missing from the documented methods", method, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}
