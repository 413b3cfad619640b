package healthprofile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"health-companion/internal/middleware"
	"health-companion/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

type testRepo struct {
	health   map[string]HealthData
	order    []string
	contacts map[string]EmergencyContact
	saveErr  error
}

func newTestRepo() *testRepo {
	return &testRepo{health: map[string]HealthData{}, contacts: map[string]EmergencyContact{}}
}

func (r *testRepo) GetHealthData(ctx context.Context, ownerUserID string) (HealthData, error) {
	h, ok := r.health[ownerUserID]
	if !ok {
		return HealthData{}, ErrNoHealthData
	}
	return h, nil
}

func (r *testRepo) SaveHealthData(ctx context.Context, h HealthData) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.health[h.OwnerUserID] = h
	return nil
}

func (r *testRepo) CreateContact(ctx context.Context, c EmergencyContact) error {
	if _, ok := r.contacts[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.contacts[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *testRepo) UpdateContact(ctx context.Context, c EmergencyContact) error {
	if _, ok := r.contacts[c.ID]; !ok {
		return ErrNotFound
	}
	r.contacts[c.ID] = c
	return nil
}

func (r *testRepo) DeleteContact(ctx context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return ErrNotFound
	}
	delete(r.contacts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *testRepo) GetContact(ctx context.Context, id string) (EmergencyContact, error) {
	c, ok := r.contacts[id]
	if !ok {
		return EmergencyContact{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) ListContacts(ctx context.Context, ownerUserID string) ([]EmergencyContact, error) {
	out := make([]EmergencyContact, 0)
	for _, id := range r.order {
		if c := r.contacts[id]; c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

var testNow = time.Date(2025, 5, 24, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo).WithClock(func() time.Time { return testNow })
	return svc, repo
}

func TestService_HealthData_EmptyWhenNeverSaved(t *testing.T) {
	svc, _ := newTestService()

	h, err := svc.HealthData(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if h.OwnerUserID != "u1" || h.BloodType != "" || len(h.Conditions) != 0 || len(h.Allergies) != 0 {
		t.Fatalf("expected empty record, got %#v", h)
	}
	if h.Conditions == nil || h.Allergies == nil {
		t.Fatalf("expected non-nil slices so the API returns [] instead of null")
	}
}

func TestService_SaveHealthData_NormalizesAndAssignsIDs(t *testing.T) {
	svc, repo := newTestService()
	diagnosed := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)

	h, err := svc.SaveHealthData(context.Background(), "u1", HealthData{
		OwnerUserID: "someone-else",
		BloodType:   " ab+ ",
		HeightCm:    172.5,
		WeightKg:    70,
		Conditions: []Condition{
			{Name: " Hypertension ", DiagnosedDate: &diagnosed},
			{ID: "c1", Name: "Asthma"},
			{ID: "c1", Name: "Type 2 Diabetes"},
		},
		Allergies: []Allergy{{Allergen: "Penicillin", Severity: "Severe", Reaction: "Hives"}},
		Insurance: Insurance{Provider: " Blue Cross ", PolicyNumber: "BC123", GroupNumber: "G-9"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if h.OwnerUserID != "u1" {
		t.Fatalf("owner must come from the caller, got %q", h.OwnerUserID)
	}
	if h.BloodType != "AB+" {
		t.Fatalf("expected canonical AB+, got %q", h.BloodType)
	}
	if h.Conditions[0].Name != "Hypertension" || h.Conditions[0].ID == "" {
		t.Fatalf("expected trimmed name and new id, got %#v", h.Conditions[0])
	}
	if h.Conditions[1].ID != "c1" || h.Conditions[2].ID == "c1" || h.Conditions[2].ID == "" {
		t.Fatalf("expected duplicated id to be replaced, got %q / %q", h.Conditions[1].ID, h.Conditions[2].ID)
	}
	if h.Allergies[0].ID == "" || h.Insurance.Provider != "Blue Cross" {
		t.Fatalf("unexpected allergies/insurance: %#v / %#v", h.Allergies, h.Insurance)
	}
	if !h.UpdatedAt.Equal(testNow) {
		t.Fatalf("expected UpdatedAt=%v, got %v", testNow, h.UpdatedAt)
	}

	stored, err := svc.HealthData(context.Background(), "u1")
	if err != nil || stored.BloodType != "AB+" || len(stored.Conditions) != 3 {
		t.Fatalf("expected stored record, got %#v / %v", stored, err)
	}
	if _, ok := repo.health["someone-else"]; ok {
		t.Fatalf("record must not be stored under another owner")
	}
}

func TestService_SaveHealthData_Validation(t *testing.T) {
	future := testNow.AddDate(0, 0, 2)

	cases := []struct {
		name  string
		in    HealthData
		field string
	}{
		{"unknown blood type", HealthData{BloodType: "C+"}, "blood_type"},
		{"negative height", HealthData{HeightCm: -1}, "height_cm"},
		{"too heavy", HealthData{WeightKg: MaxWeightKg + 1}, "weight_kg"},
		{"condition without name", HealthData{Conditions: []Condition{{Name: "  "}}}, "conditions.name"},
		{"diagnosed in the future", HealthData{Conditions: []Condition{{Name: "Asthma", DiagnosedDate: &future}}}, "conditions.diagnosed_date"},
		{"allergy without allergen", HealthData{Allergies: []Allergy{{Severity: "Mild"}}}, "allergies.allergen"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.SaveHealthData(context.Background(), "u1", tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
			if len(repo.health) != 0 {
				t.Fatalf("nothing should be stored on validation error")
			}
		})
	}
}

func TestService_Contacts_CRUD(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.AddContact(ctx, "u1", ContactInput{
		Name: " Maria Lopez ", Relationship: "Sister", PrimaryPhone: "+1 555 0100",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID == "" || c.Name != "Maria Lopez" || !c.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected contact: %#v", c)
	}

	if _, err := svc.AddContact(ctx, "u1", ContactInput{Name: "John", Relationship: "Friend", PrimaryPhone: "555"}); err != nil {
		t.Fatalf("add second: %v", err)
	}

	items, err := svc.Contacts(ctx, "u1")
	if err != nil || len(items) != 2 || items[0].ID != c.ID {
		t.Fatalf("expected two contacts in insertion order, got %#v / %v", items, err)
	}

	updated, err := svc.UpdateContact(ctx, "u1", c.ID, ContactInput{
		Name: "Maria Lopez", Relationship: "Sister", PrimaryPhone: "+1 555 0100", Address: "123 Main St",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Address != "123 Main St" || !updated.CreatedAt.Equal(c.CreatedAt) {
		t.Fatalf("unexpected update: %#v", updated)
	}

	if err := svc.DeleteContact(ctx, "u1", c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Contact(ctx, "u1", c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestService_Contacts_RequiredFields(t *testing.T) {
	svc, repo := newTestService()

	cases := []ContactInput{
		{Relationship: "Sister", PrimaryPhone: "555"},
		{Name: "Maria", PrimaryPhone: "555"},
		{Name: "Maria", Relationship: "Sister", PrimaryPhone: "   "},
	}
	for _, in := range cases {
		_, err := svc.AddContact(context.Background(), "u1", in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
		if !strings.Contains(err.Error(), "Please fill in all required fields for each contact") {
			t.Fatalf("unexpected message: %v", err)
		}
	}
	if len(repo.contacts) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestService_Contacts_OtherOwnerIsNotFound(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	c, err := svc.AddContact(ctx, "u1", ContactInput{Name: "Maria", Relationship: "Sister", PrimaryPhone: "555"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := svc.Contact(ctx, "u2", c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateContact(ctx, "u2", c.ID, ContactInput{Name: "X", Relationship: "Y", PrimaryPhone: "1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.DeleteContact(ctx, "u2", c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
	if repo.contacts[c.ID].Name != "Maria" {
		t.Fatalf("contact must not be modified")
	}
}

func serveProfile(svc *Service, userID string, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	if userID != "" {
		req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: userID}))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSaveHealthDataHandler_StorageFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.saveErr = errors.New("disk full")

	req := httptest.NewRequest(http.MethodPut, "/profile/health", strings.NewReader(`{"blood_type":"O+"}`))
	rec := serveProfile(svc, "u1", req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to save health data") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestSaveHealthDataHandler_BadDiagnosedDate(t *testing.T) {
	svc, _ := newTestService()

	req := httptest.NewRequest(http.MethodPut, "/profile/health",
		strings.NewReader(`{"conditions":[{"name":"Asthma","diagnosed_date":"15/03/2020"}]}`))
	rec := serveProfile(svc, "u1", req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestContactsHandler_Unauthorized(t *testing.T) {
	svc, _ := newTestService()

	rec := serveProfile(svc, "", httptest.NewRequest(http.MethodGet, "/profile/contacts", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
