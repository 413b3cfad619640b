package appointments

import "strings"

// Search matchea doctor o especialidad (substring, case-insensitive).
func Search(items []Appointment, query string) []Appointment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.DoctorName), q) ||
			strings.Contains(strings.ToLower(string(a.Specialty)), q) {
			out = append(out, a)
		}
	}
	return out
}
