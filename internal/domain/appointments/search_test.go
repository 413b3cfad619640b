package appointments

import "testing"

func TestSearch_MatchesDoctorOrSpecialty(t *testing.T) {
	items := []Appointment{
		{ID: "1", DoctorName: "Dr. Sarah Johnson", Specialty: SpecialtyCardiology},
		{ID: "2", DoctorName: "Dr. Michael Chen", Specialty: SpecialtyEndocrinology},
	}

	cases := []struct {
		q    string
		want []string
	}{
		{"", []string{"1", "2"}},
		{"  ", []string{"1", "2"}},
		{"CHEN", []string{"2"}},
		{"cardio", []string{"1"}},
		{"dr.", []string{"1", "2"}},
		{"pediatrics", nil},
	}

	for _, tc := range cases {
		got := Search(items, tc.q)
		if len(got) != len(tc.want) {
			t.Fatalf("q=%q: expected %d results, got %d", tc.q, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("q=%q: expected id %s at %d, got %s", tc.q, id, i, got[i].ID)
			}
		}
	}
}
