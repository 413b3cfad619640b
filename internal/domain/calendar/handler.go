package calendar

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"health-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/", monthHandler(svc))
		cr.Get("/week", weekHandler(svc))
		cr.Get("/days/{date}", dayHandler(svc))
	})
}

type markerResponse struct {
	Key   Category `json:"key"`
	Color string   `json:"color"`
}

type dayMarksResponse struct {
	Dots          []markerResponse `json:"dots"`
	Selected      bool             `json:"selected,omitempty"`
	SelectedColor string           `json:"selected_color,omitempty"`
}

type monthResponse struct {
	Selected    string                      `json:"selected"`
	MarkedDates map[string]dayMarksResponse `json:"marked_dates"`
}

type agendaMedication struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
	Type   string `json:"type"`
}

type agendaAppointment struct {
	ID         string `json:"id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	Status     string `json:"status"`
}

type agendaResponse struct {
	Date         string              `json:"date"`
	Medications  []agendaMedication  `json:"medications"`
	Appointments []agendaAppointment `json:"appointments"`
}

type weekDayResponse struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Highlighted bool   `json:"highlighted"`
}

type weekResponse struct {
	Label string            `json:"label"`
	Days  []weekDayResponse `json:"days"`
}

// monthHandler godoc
// @Summary Días marcados del calendario
// @Description Devuelve por día los markers (medication, appointment) y marca el día seleccionado. Sin `selected` se usa hoy.
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param selected query string false "YYYY-MM-DD"
// @Success 200 {object} monthResponse
// @Failure 400 {string} string "invalid selected"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar [get]
func monthHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		selected, err := dateOrToday(svc, r.URL.Query().Get("selected"))
		if err != nil {
			http.Error(w, "invalid selected (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		marks, err := svc.Month(r.Context(), claims.UserID, selected)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := monthResponse{
			Selected:    DateKey(selected),
			MarkedDates: make(map[string]dayMarksResponse, len(marks)),
		}
		for k, dm := range marks {
			resp := dayMarksResponse{Dots: make([]markerResponse, 0, len(dm.Markers))}
			for _, m := range dm.Markers {
				resp.Dots = append(resp.Dots, markerResponse{Key: m.Key, Color: m.Color})
			}
			if dm.Selected {
				resp.Selected = true
				resp.SelectedColor = SelectedColor
			}
			out.MarkedDates[k] = resp
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func dayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		day, err := time.Parse(DateLayout, strings.TrimSpace(chi.URLParam(r, "date")))
		if err != nil {
			http.Error(w, "invalid date (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		agenda, err := svc.Day(r.Context(), claims.UserID, day)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := agendaResponse{
			Date:         DateKey(agenda.Date),
			Medications:  make([]agendaMedication, 0, len(agenda.Medications)),
			Appointments: make([]agendaAppointment, 0, len(agenda.Appointments)),
		}
		for _, m := range agenda.Medications {
			out.Medications = append(out.Medications, agendaMedication{
				ID:     m.ID,
				Name:   m.Name,
				Dosage: m.Dosage,
				Time:   m.TimeOfDay,
				Type:   string(m.Type),
			})
		}
		for _, a := range agenda.Appointments {
			out.Appointments = append(out.Appointments, agendaAppointment{
				ID:         a.ID,
				DoctorName: a.DoctorName,
				Specialty:  string(a.Specialty),
				Time:       a.Time,
				Location:   a.Location,
				Status:     string(a.Status),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func weekHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ref, err := dateOrToday(svc, r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "invalid date (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		view, err := svc.WeekView(r.Context(), claims.UserID, ref)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := weekResponse{Label: view.Label, Days: make([]weekDayResponse, 0, len(view.Days))}
		for _, d := range view.Days {
			out.Days = append(out.Days, weekDayResponse{
				Date:        DateKey(d.Date),
				Weekday:     d.Date.Weekday().String()[:3],
				Highlighted: d.Highlighted,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func dateOrToday(svc *Service, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return svc.Today(), nil
	}
	return time.Parse(DateLayout, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
