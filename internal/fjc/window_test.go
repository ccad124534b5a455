package fjc

import (
	"testing"

	"github.com/judgematch/internal/config"
)

func TestWindowFilter(t *testing.T) {
	consts := config.Defaults()
	consts.WindowStart = 2000
	consts.WindowEnd = 2021

	tests := []struct {
		name      string
		startYear int
		endYear   int
		keep      bool
	}{
		{
			name:      "inside window",
			startYear: 2005,
			endYear:   2010,
			keep:      true,
		},
		{
			name:      "ends at grace boundary",
			startYear: 1990,
			endYear:   1998, // window_start - 2: retained
			keep:      true,
		},
		{
			name:      "ends before grace boundary",
			startYear: 1990,
			endYear:   1997, // window_start - 3: dropped
			keep:      false,
		},
		{
			name:      "starts after window end",
			startYear: 2022,
			endYear:   2025,
			keep:      false,
		},
		{
			name:      "starts at window end",
			startYear: 2021,
			endYear:   2021,
			keep:      true,
		},
		{
			name:      "missing start year",
			startYear: 0,
			endYear:   2010,
			keep:      false,
		},
		{
			name:      "inverted interval",
			startYear: 2010,
			endYear:   2005,
			keep:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			judges := []Judge{{NID: 1, StartYear: tt.startYear, EndYear: tt.endYear}}
			got := WindowFilter(judges, consts)
			kept := len(got) == 1
			if kept != tt.keep {
				t.Errorf("WindowFilter(start=%d end=%d) kept=%v, want %v",
					tt.startYear, tt.endYear, kept, tt.keep)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"2005-03-01", 2005, true},
		{"03/01/2005", 2005, true},
		{"3/1/2005", 2005, true},
		{"", 0, false},
		{"not a date", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseYear(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseYear(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
