package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2025-04-26", true},
		{"2025-12-31", true},
		{"2025-4-26", false},
		{"26-04-2025", false},
		{"2025-02-30", false},
		{"2025-04-26T00:00:00Z", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && FormatDate(got) != tt.in {
			t.Errorf("ParseDate(%q) round-trips to %q", tt.in, FormatDate(got))
		}
	}
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2025-04-26", "2025-04-26", 1},
		{"2025-04-26", "2025-04-27", 2},
		{"2025-04-26", "2025-04-28", 3},
		{"2025-04-26", "2025-05-26", 31},
	}
	for _, tt := range tests {
		start, _ := ParseDate(tt.start)
		end, _ := ParseDate(tt.end)
		if got := DayCount(start, end); got != tt.want {
			t.Errorf("DayCount(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 4, 26, 2, 30, 0, 0, loc)
	got := DateOnly(in)
	if FormatDate(got) != "2025-04-25" {
		t.Errorf("DateOnly(%v) = %s, want the UTC calendar date 2025-04-25", in, FormatDate(got))
	}
	if got.Hour() != 0 || got.Location() != time.UTC {
		t.Errorf("DateOnly(%v) = %v, want midnight UTC", in, got)
	}
}
