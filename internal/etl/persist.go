package etl

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/judgematch/internal/match"
)

// Persisted output tables. dim_judge is the canonical judge table;
// judge_name_index is the flattened name-index from which consumers rebuild
// the in-memory lookup tables. The serial id on judge_name_index preserves
// insertion order so a rebuild replays rows in the order that produced the
// original last-write-wins outcome.
const schema = `
CREATE TABLE IF NOT EXISTS dim_judge (
	id SERIAL PRIMARY KEY,
	nid INTEGER NOT NULL,
	judge_name TEXT NOT NULL,
	first_name TEXT NOT NULL DEFAULT '',
	middle_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	court TEXT NOT NULL DEFAULT '',
	court_num INTEGER NOT NULL DEFAULT 0,
	circuit_num INTEGER NOT NULL DEFAULT 0,
	president TEXT NOT NULL DEFAULT '',
	pres_num INTEGER NOT NULL DEFAULT 0,
	party INTEGER NOT NULL DEFAULT 1,
	aba_rating INTEGER NOT NULL DEFAULT 0,
	recess BOOLEAN NOT NULL DEFAULT FALSE,
	woman BOOLEAN NOT NULL DEFAULT FALSE,
	minority BOOLEAN NOT NULL DEFAULT FALSE,
	senate_vote_type TEXT NOT NULL DEFAULT '',
	senate_vote TEXT NOT NULL DEFAULT '',
	senate_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
	start_year INTEGER NOT NULL,
	end_year INTEGER NOT NULL,
	name_perm1 TEXT NOT NULL DEFAULT '',
	name_perm2 TEXT NOT NULL DEFAULT '',
	name_perm3 TEXT NOT NULL DEFAULT '',
	name_perm4 TEXT NOT NULL DEFAULT '',
	name_perm5 TEXT NOT NULL DEFAULT '',
	name_perm6 TEXT NOT NULL DEFAULT '',
	name_perm7 TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS judge_name_index (
	id SERIAL PRIMARY KEY,
	year INTEGER NOT NULL,
	court_num INTEGER NOT NULL DEFAULT 0,
	circuit_num INTEGER NOT NULL DEFAULT 0,
	name_perm TEXT NOT NULL,
	judge_name TEXT NOT NULL
);
`

// persist truncates and reloads both output tables inside one transaction,
// so readers of the database never see a partial load.
func (p *Pipeline) persist(result *Result) error {
	if _, err := p.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create output tables: %w", err)
	}

	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"dim_judge", "judge_name_index"} {
		if _, err := tx.Exec("TRUNCATE TABLE " + table); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	judgeStmt, err := tx.Prepare(`
		INSERT INTO dim_judge (
			nid, judge_name, first_name, middle_name, last_name,
			court, court_num, circuit_num, president, pres_num,
			party, aba_rating, recess, woman, minority,
			senate_vote_type, senate_vote, senate_percent,
			start_year, end_year,
			name_perm1, name_perm2, name_perm3, name_perm4,
			name_perm5, name_perm6, name_perm7
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare dim_judge insert: %w", err)
	}
	defer judgeStmt.Close()

	for _, j := range result.Judges {
		_, err := judgeStmt.Exec(
			j.NID, j.CanonicalFullName(), j.FirstName, j.MiddleName, j.LastName,
			j.Court, j.CourtNum, j.CircuitNum, j.President, j.PresNum,
			j.Party, j.ABARating, j.Recess, j.Woman, j.Minority,
			j.SenateVoteType, j.SenateVote, j.SenatePercent,
			j.StartYear, j.EndYear,
			j.Perms[0], j.Perms[1], j.Perms[2], j.Perms[3],
			j.Perms[4], j.Perms[5], j.Perms[6],
		)
		if err != nil {
			return fmt.Errorf("failed to insert judge nid=%d: %w", j.NID, err)
		}
	}

	rowStmt, err := tx.Prepare(`
		INSERT INTO judge_name_index (year, court_num, circuit_num, name_perm, judge_name)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare judge_name_index insert: %w", err)
	}
	defer rowStmt.Close()

	for _, row := range result.Rows {
		if _, err := rowStmt.Exec(row.Year, row.CourtNum, row.CircuitNum, row.Perm, row.JudgeName); err != nil {
			return fmt.Errorf("failed to insert name row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}

	p.logger.Info("output tables loaded",
		zap.Int("judges", len(result.Judges)),
		zap.Int("nameRows", len(result.Rows)))
	return nil
}

// LoadNameRows reads the persisted name index back in insertion order, the
// form any consuming process rebuilds its lookup tables from.
func LoadNameRows(db *sql.DB) ([]match.NameRow, error) {
	rows, err := db.Query(`
		SELECT year, court_num, circuit_num, name_perm, judge_name
		FROM judge_name_index
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query judge_name_index: %w", err)
	}
	defer rows.Close()

	var out []match.NameRow
	for rows.Next() {
		var r match.NameRow
		if err := rows.Scan(&r.Year, &r.CourtNum, &r.CircuitNum, &r.Perm, &r.JudgeName); err != nil {
			return nil, fmt.Errorf("failed to scan name row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read name rows: %w", err)
	}
	return out, nil
}
