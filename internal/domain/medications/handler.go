package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"health-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", addMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))

		// Reposiciones próximas (refill_reminder = true)
		mr.Get("/refills", dueRefillsHandler(svc))

		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Put("/{medicationID}", updateMedicationHandler(svc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

// medicationRequest se usa para alta (POST) y reemplazo completo (PUT).
type medicationRequest struct {
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"`
	Frequency      Frequency `json:"frequency" enums:"Once daily,Twice daily,Three times daily,Four times daily,Weekly,As needed"`
	Time           string    `json:"time"`
	Type           Type      `json:"type" enums:"Tablet,Capsule,Liquid,Injection,Inhaler,Drops,Cream,Patch"`
	StartDate      string    `json:"start_date"`  // YYYY-MM-DD
	EndDate        string    `json:"end_date"`    // YYYY-MM-DD opcional
	Instructions   string    `json:"instructions"`
	RefillDate     string    `json:"refill_date"` // YYYY-MM-DD opcional
	RefillReminder bool      `json:"refill_reminder"`
}

// medicationResponse representa una medicación devuelta por la API.
type medicationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"`
	Frequency      Frequency `json:"frequency"`
	Time           string    `json:"time"`
	Type           Type      `json:"type"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date,omitempty"`
	Instructions   string    `json:"instructions,omitempty"`
	RefillDate     *string   `json:"refill_date,omitempty"`
	RefillReminder bool      `json:"refill_reminder"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// addMedicationHandler godoc
// @Summary Registrar medicación
// @Description Crea una medicación para el usuario autenticado. name y dosage son obligatorios; frequency y type deben ser valores conocidos.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body medicationRequest true "Datos de la medicación; fechas en formato YYYY-MM-DD"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
func addMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req medicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toAddInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.Add(r.Context(), claims.UserID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Description Lista las medicaciones del usuario en orden de alta. Permite buscar por nombre y filtrar por estado.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param q query string false "Texto a buscar en el nombre (sin distinguir mayúsculas)"
// @Param status query string false "all, active, upcoming, ended"
// @Success 200 {array} medicationResponse
// @Failure 400 {string} string "status inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), claims.UserID, ListFilter{
			Query:  r.URL.Query().Get("q"),
			Status: StatusFilter(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

func dueRefillsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		days := 7
		if v := strings.TrimSpace(r.URL.Query().Get("within_days")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > 365 {
				http.Error(w, "within_days must be between 0 and 365", http.StatusBadRequest)
				return
			}
			days = n
		}

		items, err := svc.DueRefills(r.Context(), claims.UserID, time.Duration(days)*24*time.Hour)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Reemplazar medicación
// @Description Reemplaza todos los campos de la medicación indicada. Si el id no existe devuelve 404 y no modifica nada.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param medicationID path string true "ID de la medicación"
// @Param payload body medicationRequest true "Registro completo"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [put]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req medicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toAddInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), claims.UserID, Medication{
			ID:             chi.URLParam(r, "medicationID"),
			Name:           in.Name,
			Dosage:         in.Dosage,
			Frequency:      Frequency(in.Frequency),
			TimeOfDay:      in.TimeOfDay,
			Type:           Type(in.Type),
			StartDate:      in.StartDate,
			EndDate:        in.EndDate,
			Instructions:   in.Instructions,
			RefillDate:     in.RefillDate,
			RefillReminder: in.RefillReminder,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(updated))
	}
}

func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "medicationID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (req medicationRequest) toAddInput() (AddInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return AddInput{}, err
	}
	end, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return AddInput{}, err
	}
	refill, err := parseOptionalDate("refill_date", req.RefillDate)
	if err != nil {
		return AddInput{}, err
	}

	return AddInput{
		Name:           req.Name,
		Dosage:         req.Dosage,
		Frequency:      string(req.Frequency),
		TimeOfDay:      req.Time,
		Type:           string(req.Type),
		StartDate:      start,
		EndDate:        end,
		Instructions:   req.Instructions,
		RefillDate:     refill,
		RefillReminder: req.RefillReminder,
	}, nil
}

func parseDate(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, invalid(field, "is required")
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, invalid(field, "must be YYYY-MM-DD")
	}
	return t, nil
}

func parseOptionalDate(field, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := parseDate(field, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:             m.ID,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Frequency:      m.Frequency,
		Time:           m.TimeOfDay,
		Type:           m.Type,
		StartDate:      m.StartDate.Format(dateLayout),
		EndDate:        formatOptionalDate(m.EndDate),
		Instructions:   m.Instructions,
		RefillDate:     formatOptionalDate(m.RefillDate),
		RefillReminder: m.RefillReminder,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMedicationResponses(items []Medication) []medicationResponse {
	out := make([]medicationResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMedicationResponse(m))
	}
	return out
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
