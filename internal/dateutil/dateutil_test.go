package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2024-06-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("15/06/2024")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange("2024-06-15", "2024-06-10")
		if !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndDateBeforeStart)
		}
	})

	t.Run("empty end defaults to start", func(t *testing.T) {
		dr, err := NewDateRange("2024-06-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dr.Start.Equal(dr.End) {
			t.Errorf("expected start and end to be equal, got %v and %v", dr.Start, dr.End)
		}
	})
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "saturday goes back to sunday",
			in:   time.Date(2024, 6, 15, 14, 30, 0, 0, time.Local), // Saturday
			want: time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sunday is its own week start",
			in:   time.Date(2024, 6, 9, 23, 59, 0, 0, time.Local),
			want: time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name: "wednesday mid-week",
			in:   time.Date(2024, 6, 12, 8, 0, 0, 0, time.Local),
			want: time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name: "week spanning two months",
			in:   time.Date(2024, 7, 2, 0, 0, 0, 0, time.Local), // Tuesday
			want: time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekRange(t *testing.T) {
	sunday, saturday := WeekRange(time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local))
	if sunday.Weekday() != time.Sunday {
		t.Errorf("week start is %v, want Sunday", sunday.Weekday())
	}
	if saturday.Weekday() != time.Saturday {
		t.Errorf("week end is %v, want Saturday", saturday.Weekday())
	}
	if saturday.Sub(sunday) != 6*24*time.Hour {
		t.Errorf("week spans %v, want 6 days", saturday.Sub(sunday))
	}
}

func TestWeekDates(t *testing.T) {
	start := time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local)
	days := WeekDates(start)
	if !days[0].Equal(start) {
		t.Errorf("first day is %v, want %v", days[0], start)
	}
	if days[6].Day() != 15 {
		t.Errorf("last day is %d, want 15", days[6].Day())
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantFirst int
		wantLast  int
	}{
		{"june", time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), 1, 30},
		{"february leap year", time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local), 1, 29},
		{"february non-leap", time.Date(2023, 2, 10, 0, 0, 0, 0, time.Local), 1, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthBounds(tt.in)
			if first.Day() != tt.wantFirst {
				t.Errorf("first day = %d, want %d", first.Day(), tt.wantFirst)
			}
			if last.Day() != tt.wantLast {
				t.Errorf("last day = %d, want %d", last.Day(), tt.wantLast)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)); got != 29 {
		t.Errorf("got %d, want 29", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, 6, 15, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 6, 16, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected same day for different times on one date")
	}
	if SameDay(a, c) {
		t.Error("expected different days")
	}
}
