package calendar

import "time"

// Week devuelve los siete días de la semana de ref, empezando en domingo.
func Week(ref time.Time) [7]time.Time {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -int(day.Weekday()))

	var out [7]time.Time
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

type WeekDay struct {
	Date        time.Time
	Highlighted bool
}

type WeekView struct {
	Label string // "May 25 - May 31, 2025"
	Days  []WeekDay
}

func buildWeekView(ref time.Time, highlighted map[string]bool) WeekView {
	days := Week(ref)

	out := WeekView{
		Label: days[0].Format("Jan 2") + " - " + days[6].Format("Jan 2, 2006"),
		Days:  make([]WeekDay, 0, len(days)),
	}
	for _, d := range days {
		out.Days = append(out.Days, WeekDay{Date: d, Highlighted: highlighted[DateKey(d)]})
	}
	return out
}
