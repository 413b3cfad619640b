package healthprofile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"health-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/health", getHealthDataHandler(svc))
		pr.Put("/health", saveHealthDataHandler(svc))

		pr.Route("/contacts", func(cr chi.Router) {
			cr.Post("/", addContactHandler(svc))
			cr.Get("/", listContactsHandler(svc))
			cr.Get("/{contactID}", getContactHandler(svc))
			cr.Put("/{contactID}", updateContactHandler(svc))
			cr.Delete("/{contactID}", deleteContactHandler(svc))
		})
	})
}

type conditionPayload struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	DiagnosedDate string `json:"diagnosed_date,omitempty"` // YYYY-MM-DD opcional
	Notes         string `json:"notes,omitempty"`
}

type allergyPayload struct {
	ID       string `json:"id,omitempty"`
	Allergen string `json:"allergen"`
	Severity string `json:"severity,omitempty"`
	Reaction string `json:"reaction,omitempty"`
}

type insurancePayload struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policy_number"`
	GroupNumber  string `json:"group_number"`
}

// healthDataPayload se usa tanto para el PUT como para la respuesta.
type healthDataPayload struct {
	BloodType  BloodType          `json:"blood_type" enums:"A+,A-,B+,B-,AB+,AB-,O+,O-"`
	HeightCm   float64            `json:"height_cm"`
	WeightKg   float64            `json:"weight_kg"`
	Conditions []conditionPayload `json:"conditions"`
	Allergies  []allergyPayload   `json:"allergies"`
	Insurance  insurancePayload   `json:"insurance"`
	UpdatedAt  *time.Time         `json:"updated_at,omitempty"`
}

type contactRequest struct {
	Name           string `json:"name"`
	Relationship   string `json:"relationship"`
	PrimaryPhone   string `json:"primary_phone"`
	SecondaryPhone string `json:"secondary_phone"`
	Address        string `json:"address"`
}

type contactResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Relationship   string    `json:"relationship"`
	PrimaryPhone   string    `json:"primary_phone"`
	SecondaryPhone string    `json:"secondary_phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func getHealthDataHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		h, err := svc.HealthData(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toHealthDataPayload(h))
	}
}

// saveHealthDataHandler godoc
// @Summary Guardar ficha médica
// @Description Reemplaza la ficha médica del usuario (grupo sanguíneo, altura, peso, condiciones, alergias y seguro).
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body healthDataPayload true "Ficha completa"
// @Success 200 {object} healthDataPayload
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "Failed to save health data"
// @Router /profile/health [put]
func saveHealthDataHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req healthDataPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toHealthData()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		h, err := svc.SaveHealthData(r.Context(), claims.UserID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to save health data", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toHealthDataPayload(h))
	}
}

// addContactHandler godoc
// @Summary Agregar contacto de emergencia
// @Description name, relationship y primary_phone son obligatorios.
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body contactRequest true "Contacto"
// @Success 201 {object} contactResponse
// @Failure 400 {string} string "Please fill in all required fields for each contact"
// @Failure 401 {string} string "unauthorized"
// @Router /profile/contacts [post]
func addContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.AddContact(r.Context(), claims.UserID, req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toContactResponse(c))
	}
}

func listContactsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Contacts(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]contactResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContactResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.Contact(r.Context(), claims.UserID, chi.URLParam(r, "contactID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toContactResponse(c))
	}
}

func updateContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.UpdateContact(r.Context(), claims.UserID, chi.URLParam(r, "contactID"), req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toContactResponse(c))
	}
}

func deleteContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteContact(r.Context(), claims.UserID, chi.URLParam(r, "contactID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (req healthDataPayload) toHealthData() (HealthData, error) {
	h := HealthData{
		BloodType: req.BloodType,
		HeightCm:  req.HeightCm,
		WeightKg:  req.WeightKg,
		Insurance: Insurance{
			Provider:     req.Insurance.Provider,
			PolicyNumber: req.Insurance.PolicyNumber,
			GroupNumber:  req.Insurance.GroupNumber,
		},
	}

	for _, c := range req.Conditions {
		var diagnosed *time.Time
		if v := strings.TrimSpace(c.DiagnosedDate); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				return HealthData{}, invalid("conditions.diagnosed_date", "must be YYYY-MM-DD")
			}
			diagnosed = &t
		}
		h.Conditions = append(h.Conditions, Condition{
			ID:            c.ID,
			Name:          c.Name,
			DiagnosedDate: diagnosed,
			Notes:         c.Notes,
		})
	}
	for _, a := range req.Allergies {
		h.Allergies = append(h.Allergies, Allergy(a))
	}
	return h, nil
}

func (req contactRequest) toInput() ContactInput {
	return ContactInput{
		Name:           req.Name,
		Relationship:   req.Relationship,
		PrimaryPhone:   req.PrimaryPhone,
		SecondaryPhone: req.SecondaryPhone,
		Address:        req.Address,
	}
}

func toHealthDataPayload(h HealthData) healthDataPayload {
	out := healthDataPayload{
		BloodType:  h.BloodType,
		HeightCm:   h.HeightCm,
		WeightKg:   h.WeightKg,
		Conditions: make([]conditionPayload, 0, len(h.Conditions)),
		Allergies:  make([]allergyPayload, 0, len(h.Allergies)),
		Insurance: insurancePayload{
			Provider:     h.Insurance.Provider,
			PolicyNumber: h.Insurance.PolicyNumber,
			GroupNumber:  h.Insurance.GroupNumber,
		},
	}
	if !h.UpdatedAt.IsZero() {
		t := h.UpdatedAt
		out.UpdatedAt = &t
	}
	for _, c := range h.Conditions {
		p := conditionPayload{ID: c.ID, Name: c.Name, Notes: c.Notes}
		if c.DiagnosedDate != nil {
			p.DiagnosedDate = c.DiagnosedDate.Format(dateLayout)
		}
		out.Conditions = append(out.Conditions, p)
	}
	for _, a := range h.Allergies {
		out.Allergies = append(out.Allergies, allergyPayload(a))
	}
	return out
}

func toContactResponse(c EmergencyContact) contactResponse {
	return contactResponse{
		ID:             c.ID,
		Name:           c.Name,
		Relationship:   c.Relationship,
		PrimaryPhone:   c.PrimaryPhone,
		SecondaryPhone: c.SecondaryPhone,
		Address:        c.Address,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "emergency contact not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
