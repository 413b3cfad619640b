package clock

import "time"

// Today es la fecha del día de now en UTC, a medianoche.
// Todas las vistas por día (filtros de medicación, reposiciones, calendario)
// usan esta misma cuenta.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
