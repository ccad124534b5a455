package fjc

import (
	"strings"
	"time"

	"github.com/judgematch/internal/config"
)

// Date layouts seen across the FJC exports.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// parseYear extracts the year from a date string in any known layout.
func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}

// WindowFilter keeps judges active at some point during the analysis
// window. A two-year grace period before the window start retains judges
// mid-transition: a record ending exactly at WindowStart-2 survives, one
// ending at WindowStart-3 does not. Records without a parseable start date
// are dropped, so everything downstream has a usable service interval.
// Excluded records contribute no lookup keys.
func WindowFilter(judges []Judge, consts config.Constants) []Judge {
	kept := make([]Judge, 0, len(judges))
	for _, j := range judges {
		if j.StartYear == 0 || j.StartYear > consts.WindowEnd {
			continue
		}
		if j.EndYear < consts.WindowStart-2 {
			continue
		}
		if j.EndYear < j.StartYear {
			continue
		}
		kept = append(kept, j)
	}
	return kept
}
