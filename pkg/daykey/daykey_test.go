package daykey

import (
	"testing"
	"time"
)

func TestFromTime_StripsTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 14, 6, 15, 0, 0, time.Local)
	evening := time.Date(2024, 3, 14, 23, 59, 59, 0, time.Local)

	if FromTime(morning) != FromTime(evening) {
		t.Fatalf("same date produced different keys: %s vs %s", FromTime(morning), FromTime(evening))
	}
	if got := FromTime(morning); got != "2024-03-14" {
		t.Fatalf("got %s, want 2024-03-14", got)
	}
}

func TestParse_RoundTrips(t *testing.T) {
	d, err := Parse("2024-03-14")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	again, err := Parse(d.String())
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}
	if again != d {
		t.Fatalf("parse is not idempotent: %s vs %s", again, d)
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "not-a-date", "2024-13-01", "14/03/2024", "2024-03-14T00:00:00Z"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestAddDays_CrossesBoundaries(t *testing.T) {
	cases := []struct {
		start DayKey
		n     int
		want  DayKey
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-03-14", 0, "2024-03-14"},
	}
	for _, c := range cases {
		if got := c.start.AddDays(c.n); got != c.want {
			t.Errorf("%s + %d days = %s, want %s", c.start, c.n, got, c.want)
		}
	}
}

func TestAddDays_Inverse(t *testing.T) {
	d := DayKey("2024-03-14")
	for _, n := range []int{1, 7, 30, 365, -12, 400} {
		if got := d.AddDays(n).AddDays(-n); got != d {
			t.Errorf("AddDays(%d) then AddDays(%d) = %s, want %s", n, -n, got, d)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := DayKey("2024-03-14")
	b := DayKey("2024-03-15")

	if !SameDay(a, a) {
		t.Error("SameDay(a, a) = false")
	}
	if SameDay(a, b) {
		t.Error("SameDay on different days = true")
	}
	if SameDay(a, "") || SameDay("", a) || SameDay("", "") {
		t.Error("SameDay with an absent side should be false")
	}
}

func TestWeekday(t *testing.T) {
	// 2024-03-17 was a Sunday.
	if got := DayKey("2024-03-17").Weekday(); got != time.Sunday {
		t.Fatalf("got %v, want Sunday", got)
	}
	if got := DayKey("2024-03-18").Weekday(); got != time.Monday {
		t.Fatalf("got %v, want Monday", got)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b DayKey
		want int
	}{
		{"2024-03-14", "2024-03-14", 0},
		{"2024-03-14", "2024-03-21", 7},
		{"2024-03-21", "2024-03-14", -7},
		{"2023-12-31", "2024-01-01", 1},
		{"2024-01-01", "2025-01-01", 366}, // leap year
	}
	for _, c := range cases {
		if got := DaysBetween(c.a, c.b); got != c.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestBefore_OrdersChronologically(t *testing.T) {
	if !DayKey("2024-02-29").Before("2024-03-01") {
		t.Error("2024-02-29 should be before 2024-03-01")
	}
	if DayKey("2024-03-01").Before("2024-03-01") {
		t.Error("Before is strict")
	}
}
