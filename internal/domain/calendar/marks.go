package calendar

import (
	"time"
)

const DateLayout = "2006-01-02"

// Category identifica el tipo de registro que marca un día.
type Category string

const (
	CategoryMedication  Category = "medication"
	CategoryAppointment Category = "appointment"
)

// Orden fijo de los markers dentro de un día.
var categoryOrder = []Category{CategoryMedication, CategoryAppointment}

var categoryColors = map[Category]string{
	CategoryMedication:  "#10B981",
	CategoryAppointment: "#3B82F6",
}

const SelectedColor = "#3B82F6"

type Marker struct {
	Key   Category
	Color string
}

type DayMarks struct {
	Markers  []Marker
	Selected bool
}

// Entry asocia un registro a un día.
type Entry struct {
	Date     time.Time
	Category Category
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MarkDates arma el mapa día -> markers. Cada categoría aparece a lo sumo una vez
// por día; un día sin registros no tiene entrada salvo que sea el seleccionado.
// Un selected zero no marca selección.
func MarkDates(entries []Entry, selected time.Time) map[string]DayMarks {
	seen := make(map[string]map[Category]bool)
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		if _, known := categoryColors[e.Category]; !known {
			continue
		}
		k := DateKey(e.Date)
		if seen[k] == nil {
			seen[k] = make(map[Category]bool)
		}
		seen[k][e.Category] = true
	}

	out := make(map[string]DayMarks, len(seen)+1)
	for k, cats := range seen {
		markers := make([]Marker, 0, len(cats))
		for _, c := range categoryOrder {
			if cats[c] {
				markers = append(markers, Marker{Key: c, Color: categoryColors[c]})
			}
		}
		out[k] = DayMarks{Markers: markers}
	}

	if !selected.IsZero() {
		k := DateKey(selected)
		dm := out[k]
		dm.Selected = true
		out[k] = dm
	}

	return out
}
