package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-companion/internal/middleware"
	"health-companion/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func serveCalendar(t *testing.T, svc *Service, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "user-1"}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestMonthHandler_DefaultsToServiceClock(t *testing.T) {
	now := time.Date(2025, 5, 24, 22, 0, 0, 0, time.FixedZone("ART", -3*3600))
	svc := newTestService().WithClock(func() time.Time { return now })

	rec := serveCalendar(t, svc, "/calendar")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var out monthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Selected != "2025-05-25" {
		t.Fatalf("expected selected = UTC date 2025-05-25, got %s", out.Selected)
	}
	if sel := out.MarkedDates["2025-05-25"]; !sel.Selected || len(sel.Dots) != 2 {
		t.Fatalf("unexpected selected day: %#v", sel)
	}
}

func TestMonthHandler_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, newTestService())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestWeekHandler_BadDate(t *testing.T) {
	rec := serveCalendar(t, newTestService(), "/calendar/week?date=25-05-2025")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
