package fjc

import (
	"strconv"
	"strings"

	"github.com/judgematch/internal/config"
	"github.com/judgematch/internal/normalize"
)

// Source values that mark a continuation of the previous row's assignment
// rather than data in their own right.
var continuationValues = map[string]bool{
	"None (assignment)":   true,
	"None (reassignment)": true,
}

// CanonicalizeColumns lower-cases column names, replaces spaces with
// underscores and applies the per-source rename maps. Returns a new table;
// the input is not modified.
func CanonicalizeColumns(t *Table, consts config.Constants) *Table {
	rename := func(col string) string {
		col = strings.ToLower(col)
		col = strings.ReplaceAll(col, " ", "_")
		for _, m := range []map[string]string{
			consts.ServiceRenames,
			consts.CareerRenames,
			consts.DemographicsRenames,
		} {
			if to, ok := m[col]; ok {
				col = to
			}
		}
		return col
	}

	out := &Table{Columns: make([]string, len(t.Columns))}
	for i, col := range t.Columns {
		out.Columns[i] = rename(col)
	}
	for _, row := range t.Rows {
		nrow := make(Row, len(row))
		for col, v := range row {
			nrow[rename(col)] = v
		}
		out.Rows = append(out.Rows, nrow)
	}
	return out
}

// ForwardFill propagates values down the table in current row order:
// continuation markers in any column, and missing values in the two senate
// vote columns, inherit the previous row's value. The source encodes
// multi-row vote events where only the first row carries the outcome, so
// stable input ordering is a precondition here.
func ForwardFill(t *Table) {
	prev := make(map[string]string, len(t.Columns))
	for _, row := range t.Rows {
		for _, col := range t.Columns {
			v := row[col]
			if continuationValues[v] {
				row[col] = prev[col]
			}
		}
		for _, col := range []string{"senate_vote_type", "senate_vote"} {
			if row[col] == "" {
				row[col] = prev[col]
			}
		}
		for _, col := range t.Columns {
			prev[col] = row[col]
		}
	}
}

// ToJudges converts normalized merged rows into typed judge records,
// applying the categorical encodings and date parsing. Rows without a
// parseable nid are dropped; that is a per-row fault, not a structural one.
func ToJudges(t *Table, consts config.Constants) []Judge {
	judges := make([]Judge, 0, len(t.Rows))
	for _, row := range t.Rows {
		nid, err := strconv.Atoi(strings.TrimSpace(row["nid"]))
		if err != nil {
			continue
		}

		j := Judge{
			NID:        nid,
			JudgeName:  normalize.StripPunct(row["judge_name"]),
			FirstName:  normalize.StripPunct(row["first_name"]),
			MiddleName: normalize.StripPunct(row["middle_name"]),
			LastName:   normalize.StripPunct(row["last_name"]),

			Court:      row["court"],
			CourtNum:   consts.CourtNum(row["court"]),
			CircuitNum: consts.CircuitNum(row["court"]),

			President: row["president"],
			PresNum:   consts.Presidents[row["president"]],
			Party:     encodeParty(row["party"]),
			ABARating: encodeABARating(row["aba_rating"]),
			Recess:    len(row["recess"]) > 1,
			Woman:     row["gender"] == "Female",
			Minority:  encodeMinority(row["race"]),

			SenateVoteType: row["senate_vote_type"],
			SenateVote:     row["senate_vote"],
			SenatePercent:  VotePercent(row["senate_vote_type"], row["senate_vote"]),
		}

		j.StartYear, _ = parseYear(row["start_date"])
		if end, ok := parseYear(row["termination_date"]); ok {
			j.EndYear = end
		} else {
			j.EndYear = consts.PresentYear
		}

		judges = append(judges, j)
	}
	return judges
}

// encodeParty maps the appointing president's party to a signed code:
// Democratic is -1, everything else 1.
func encodeParty(party string) int {
	if party == "Democratic" {
		return -1
	}
	return 1
}

// encodeABARating maps the ABA qualification rating to an ordinal 0-4.
// Unmatched or missing ratings encode to 0.
func encodeABARating(rating string) int {
	switch rating {
	case "Exceptionally Well Qualified":
		return 4
	case "Well Qualified":
		return 3
	case "Qualified":
		return 2
	case "Not Qualified":
		return 1
	default:
		return 0
	}
}

func encodeMinority(race string) bool {
	for _, marker := range []string{"American", "Hispanic", "Pacific"} {
		if strings.Contains(race, marker) {
			return true
		}
	}
	return false
}

// VotePercent computes the yea share of a senate confirmation vote. Voice
// votes count as unanimous. The tally must be a single-slash "yeas/nays"
// pair of integers; any other shape, including double slashes and a zero
// total, degrades to 0 rather than failing, so the output stays
// reproducible on malformed input.
func VotePercent(voteType, vote string) float64 {
	if voteType == "Voice" {
		return 1.0
	}
	if !strings.Contains(vote, "/") || strings.Contains(vote, "//") {
		return 0.0
	}
	parts := strings.Split(vote, "/")
	if len(parts) != 2 {
		return 0.0
	}
	yeas, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0.0
	}
	nays, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0.0
	}
	if yeas+nays <= 0 {
		return 0.0
	}
	return float64(yeas) / float64(yeas+nays)
}
