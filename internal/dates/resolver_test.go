package dates

import (
	"errors"
	"testing"
	"time"
)

var ict = time.FixedZone("ICT", 7*3600)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, ict)
}

func TestResolveExplicitDay(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		day  int
		want time.Time
	}{
		{
			name: "day after reference rolls to previous month",
			ref:  date(2026, time.January, 15),
			day:  20,
			want: date(2025, time.December, 20),
		},
		{
			name: "day before reference stays in reference month",
			ref:  date(2026, time.March, 15),
			day:  10,
			want: date(2026, time.March, 10),
		},
		{
			name: "day equal to reference stays in reference month",
			ref:  date(2026, time.March, 15),
			day:  15,
			want: date(2026, time.March, 15),
		},
		{
			name: "mid month rollover without year change",
			ref:  date(2026, time.June, 3),
			day:  28,
			want: date(2026, time.May, 28),
		},
		{
			name: "first of january names itself",
			ref:  date(2026, time.January, 1),
			day:  1,
			want: date(2026, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.ref, tt.day, false)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Resolve = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveYesterdayAndDefault(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 11, 42, 7, 0, ict)

	got, err := Resolve(ref, 0, true)
	if err != nil {
		t.Fatalf("Resolve yesterday: %v", err)
	}
	if !got.Equal(date(2026, time.March, 14)) {
		t.Fatalf("yesterday = %s, want 2026-03-14", got)
	}

	got, err = Resolve(date(2026, time.January, 1), 0, true)
	if err != nil {
		t.Fatalf("Resolve yesterday across year: %v", err)
	}
	if !got.Equal(date(2025, time.December, 31)) {
		t.Fatalf("yesterday across year = %s, want 2025-12-31", got)
	}

	got, err = Resolve(ref, 0, false)
	if err != nil {
		t.Fatalf("Resolve default: %v", err)
	}
	if !got.Equal(date(2026, time.March, 15)) {
		t.Fatalf("default = %s, want midnight of reference day", got)
	}
	if got.Location() != ict {
		t.Fatalf("default kept location %v, want %v", got.Location(), ict)
	}
}

func TestResolveInvalidDay(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		day  int
	}{
		{"31 against a 30 day month", date(2026, time.May, 10), 31},
		{"29 against non leap february", date(2026, time.March, 1), 29},
		{"day beyond any month", date(2026, time.July, 20), 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.ref, tt.day, false)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("Resolve error = %v, want ErrInvalidDate", err)
			}
		})
	}
}
