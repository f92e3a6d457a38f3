package task

import (
	"testing"
	"time"
)

func msPtr(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

func TestParseDeadlineString(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     time.Time
		ok       bool
	}{
		{
			name:     "date with time",
			deadline: "05/03/2024 14:30",
			want:     time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local),
			ok:       true,
		},
		{
			name:     "date only defaults to midnight",
			deadline: "05/03/2024",
			want:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			ok:       true,
		},
		{
			name:     "single digit day and month",
			deadline: "1/6/2024 9:00",
			want:     time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local),
			ok:       true,
		},
		{
			name:     "surrounding whitespace",
			deadline: "  15/06/2024 08:15  ",
			want:     time.Date(2024, 6, 15, 8, 15, 0, 0, time.Local),
			ok:       true,
		},
		{name: "day out of range", deadline: "32/01/2024", ok: false},
		{name: "month out of range", deadline: "15/13/2024", ok: false},
		{name: "nonexistent leap day", deadline: "29/02/2023", ok: false},
		{name: "hour rollover rejected", deadline: "15/06/2024 25:00", ok: false},
		{name: "minute rollover rejected", deadline: "15/06/2024 10:99", ok: false},
		{name: "free text", deadline: "depois do almoço", ok: false},
		{name: "empty", deadline: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDeadlineString(tt.deadline)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParserStringPath(t *testing.T) {
	p := NewParser(HourOffset)
	tk := &Task{Client: "Maria", Deadline: "05/03/2024 14:30"}

	got, ok := p.Parse(tk)
	if !ok {
		t.Fatal("expected a parsed deadline")
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 5 ||
		got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("got %v, want 2024-03-05 14:30 local", got)
	}
}

func TestParserTimestampPath(t *testing.T) {
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)

	t.Run("timestamp wins over the string", func(t *testing.T) {
		p := NewParser(HourOffset)
		tk := &Task{Client: "Maria", Deadline: "31/12/2030 23:59", DeadlineTimestamp: msPtr(base)}

		got, ok := p.Parse(tk)
		if !ok {
			t.Fatal("expected a parsed deadline")
		}
		if !got.Equal(base) {
			t.Errorf("got %v, want %v", got, base)
		}
	})

	t.Run("hour offset from the string is added", func(t *testing.T) {
		p := NewParser(HourOffset)
		tk := &Task{Client: "Maria", Deadline: "01/06/2024 09:00 +2h", DeadlineTimestamp: msPtr(base)}

		got, ok := p.Parse(tk)
		if !ok {
			t.Fatal("expected a parsed deadline")
		}
		want := base.Add(2 * time.Hour)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("nil offset collaborator degrades to no adjustment", func(t *testing.T) {
		p := NewParser(nil)
		tk := &Task{Client: "Maria", Deadline: "01/06/2024 09:00 +2h", DeadlineTimestamp: msPtr(base)}

		got, ok := p.Parse(tk)
		if !ok {
			t.Fatal("expected a parsed deadline")
		}
		if !got.Equal(base) {
			t.Errorf("got %v, want %v", got, base)
		}
	})
}

func TestParserNoDeadline(t *testing.T) {
	p := NewParser(HourOffset)

	for _, tk := range []*Task{
		nil,
		{Client: "Maria"},
		{Client: "Maria", Deadline: DeadlineUndefined},
		{Client: "Maria", Deadline: "sexta que vem"},
	} {
		if _, ok := p.Parse(tk); ok {
			t.Errorf("Parse(%+v) unexpectedly returned a date", tk)
		}
	}
}

func TestParserIdempotent(t *testing.T) {
	p := NewParser(HourOffset)
	tk := &Task{Client: "Maria", Deadline: "05/03/2024 14:30"}

	first, ok1 := p.Parse(tk)
	second, ok2 := p.Parse(tk)
	if ok1 != ok2 || !first.Equal(second) {
		t.Errorf("repeated parse differs: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}

func TestParserCacheInvalidation(t *testing.T) {
	t.Run("deadline string edit", func(t *testing.T) {
		p := NewParser(HourOffset)
		tk := &Task{Client: "Maria", Deadline: "05/03/2024 14:30"}

		before, _ := p.Parse(tk)
		tk.Deadline = "06/03/2024 10:00"
		after, ok := p.Parse(tk)
		if !ok {
			t.Fatal("expected a parsed deadline after edit")
		}
		if after.Equal(before) {
			t.Error("cache served a stale date after the deadline changed")
		}
		if after.Day() != 6 || after.Hour() != 10 {
			t.Errorf("got %v, want day 6 at 10:00", after)
		}
	})

	t.Run("timestamp added", func(t *testing.T) {
		p := NewParser(HourOffset)
		tk := &Task{Client: "Maria", Deadline: "05/03/2024 14:30"}
		p.Parse(tk)

		stamp := time.Date(2024, 7, 1, 8, 0, 0, 0, time.Local)
		tk.DeadlineTimestamp = msPtr(stamp)
		got, ok := p.Parse(tk)
		if !ok {
			t.Fatal("expected a parsed deadline")
		}
		if !got.Equal(stamp) {
			t.Errorf("got %v, want %v", got, stamp)
		}
	})

	t.Run("forget drops the entry", func(t *testing.T) {
		p := NewParser(HourOffset)
		tk := &Task{Client: "Maria", Deadline: "05/03/2024 14:30"}
		p.Parse(tk)
		p.Forget(tk)
		if len(p.cache) != 0 {
			t.Errorf("cache has %d entries after Forget, want 0", len(p.cache))
		}
	})
}

func TestHourOffset(t *testing.T) {
	tests := []struct {
		in    string
		hours int
		ok    bool
	}{
		{"01/06/2024 09:00 +2h", 2, true},
		{"01/06/2024 +12h", 12, true},
		{"01/06/2024 09:00", 0, false},
		{"+0h", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		hours, ok := HourOffset(tt.in)
		if hours != tt.hours || ok != tt.ok {
			t.Errorf("HourOffset(%q) = (%d, %v), want (%d, %v)", tt.in, hours, ok, tt.hours, tt.ok)
		}
	}
}

func TestFormatDeadline(t *testing.T) {
	got := FormatDeadline(time.Date(2024, 6, 1, 9, 5, 0, 0, time.Local))
	if got != "01/06/2024 09:05" {
		t.Errorf("got %q, want %q", got, "01/06/2024 09:05")
	}
}
