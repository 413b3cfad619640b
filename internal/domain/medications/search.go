package medications

import "strings"

// Search filtra por nombre (substring, sin distinguir mayúsculas).
// Query vacía devuelve la lista tal cual. No modifica items.
func Search(items []Medication, query string) []Medication {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]Medication, 0, len(items))
	for _, m := range items {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}
