package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 18, 30, 45, 123, time.UTC)
	got := BeginningOfDay(in)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("BeginningOfDay = %v, want %v", got, want)
	}
}

func TestEndOfDayIsBeforeNextDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)
	got := EndOfDay(in)
	nextDay := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if !got.Before(nextDay) {
		t.Fatalf("EndOfDay = %v, should be before %v", got, nextDay)
	}
	if !SameDay(got, in) {
		t.Fatalf("EndOfDay = %v, should stay on the same date", got)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same date different times",
			a:    time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 5, 10, 23, 59, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent dates",
			a:    time.Date(2025, 5, 10, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day different years",
			a:    time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 13, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Fatalf("DaysBetween = %d, want 3", got)
	}
}
