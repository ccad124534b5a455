package fjc

import (
	"strings"

	"github.com/judgematch/internal/normalize"
)

// Judge is one canonical record per judge per distinct service assignment,
// after merging, encoding and windowing.
type Judge struct {
	NID        int
	JudgeName  string
	FirstName  string
	MiddleName string
	LastName   string

	Court      string
	CourtNum   int
	CircuitNum int

	President string
	PresNum   int
	Party     int
	ABARating int
	Recess    bool
	Woman     bool
	Minority  bool

	SenateVoteType string
	SenateVote     string
	SenatePercent  float64

	StartYear int
	EndYear   int

	// Perms holds the seven name variants, most to least specific.
	Perms [7]string
}

// CanonicalFullName returns the judge name used as the resolution target:
// the source judge_name column when present, otherwise the name components
// joined in order.
func (j Judge) CanonicalFullName() string {
	if name := normalize.StripPunct(j.JudgeName); name != "" {
		return name
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{j.FirstName, j.MiddleName, j.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
