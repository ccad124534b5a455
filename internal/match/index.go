package match

import (
	"github.com/judgematch/internal/normalize"
)

// NameRow is one persisted name-index tuple: a single name permutation for
// a single judge, one active-service year, with its court context.
type NameRow struct {
	Year       int
	CourtNum   int
	CircuitNum int
	Perm       string
	JudgeName  string
}

// Index is the five-layer composite key index, most specific layer first.
// It is immutable once built: a resolver may be shared across any number of
// concurrent readers without synchronization.
type Index struct {
	tables [5]map[string]string
}

// Build constructs the index from name rows. Rows are deduplicated on the
// full tuple; among distinct rows that still produce the same composite
// key, the later row wins (last-write-wins), mirroring the build order of
// the source data. Rows with empty permutation text contribute nothing.
func Build(rows []NameRow) *Index {
	idx := &Index{}
	for i := range idx.tables {
		idx.tables[i] = make(map[string]string)
	}

	seen := make(map[NameRow]bool, len(rows))
	for _, row := range rows {
		if row.Perm == "" {
			continue
		}
		if seen[row] {
			continue
		}
		seen[row] = true

		name := row.JudgeName
		if row.Year > 0 && row.CourtNum > 0 {
			idx.tables[KindCourtYear][Key(KindCourtYear, row.Year, row.CourtNum, row.CircuitNum, row.Perm)] = name
		}
		if row.Year > 0 && row.CircuitNum > 0 {
			idx.tables[KindCircuitYear][Key(KindCircuitYear, row.Year, row.CourtNum, row.CircuitNum, row.Perm)] = name
		}
		if row.Year > 0 && row.CourtNum > 0 {
			idx.tables[KindYearCourt][Key(KindYearCourt, row.Year, row.CourtNum, row.CircuitNum, row.Perm)] = name
		}
		if row.Year > 0 && row.CircuitNum > 0 {
			idx.tables[KindYearCircuit][Key(KindYearCircuit, row.Year, row.CourtNum, row.CircuitNum, row.Perm)] = name
		}
		idx.tables[KindBare][Key(KindBare, row.Year, row.CourtNum, row.CircuitNum, row.Perm)] = name
	}
	return idx
}

// Len returns the entry count of each layer, in priority order.
func (idx *Index) Len() [5]int {
	var n [5]int
	for i, t := range idx.tables {
		n[i] = len(t)
	}
	return n
}

// Query is one resolution request. Zero values mean "context not
// supplied": layers needing that context are skipped and resolution falls
// through to less specific layers.
type Query struct {
	Name       string
	Year       int
	CourtNum   int
	CircuitNum int
}

// Resolve canonicalizes the query name and walks the layers in priority
// order, returning the first hit. The second return is false when no layer
// matches; a miss is an expected outcome, not an error, and must never be
// read as a default identity.
func (idx *Index) Resolve(q Query) (string, bool) {
	name := normalize.CanonicalName(q.Name)
	if name == "" {
		return "", false
	}

	for _, kind := range kinds {
		switch kind {
		case KindCourtYear:
			if q.Year <= 0 || q.CourtNum <= 0 {
				continue
			}
		case KindCircuitYear:
			if q.Year <= 0 || q.CircuitNum <= 0 {
				continue
			}
		case KindYearCourt, KindYearCircuit:
			if q.Year <= 0 {
				continue
			}
		}
		if found, ok := idx.tables[kind][Key(kind, q.Year, q.CourtNum, q.CircuitNum, name)]; ok {
			return found, true
		}
	}
	return "", false
}
