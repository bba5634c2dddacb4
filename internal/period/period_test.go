package period

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 3, 14, 15, 9, 26, 535, time.UTC)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"sunday_belongs_to_previous_monday", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartOfWeek(tc.in); !got.Equal(tc.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 14, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected a and b on the same day")
	}
	if SameDay(b, c) {
		t.Error("expected b and c on different days")
	}
}

func TestRange(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("day", func(t *testing.T) {
		start, end := Range(WindowDay, now)
		if !start.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("day range = [%v, %v)", start, end)
		}
	})

	t.Run("week", func(t *testing.T) {
		start, end := Range(WindowWeek, now)
		if !start.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("week range = [%v, %v)", start, end)
		}
	})

	t.Run("month", func(t *testing.T) {
		start, end := Range(WindowMonth, now)
		if !start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("month range = [%v, %v)", start, end)
		}
	})

	t.Run("half_open", func(t *testing.T) {
		start, end := Range(WindowDay, now)
		if !Contains(start, start, end) {
			t.Error("start should be inside the window")
		}
		if Contains(end, start, end) {
			t.Error("end should be outside the window")
		}
	})
}
