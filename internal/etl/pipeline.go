package etl

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/judgematch/internal/config"
	"github.com/judgematch/internal/fjc"
	"github.com/judgematch/internal/match"
)

// Pipeline runs the full batch: load the three FJC exports, merge and
// normalize them, window and correct the records, generate permutations,
// persist the canonical judge table and the name index, and build the
// in-memory lookup index. Every stage is sequential; all I/O happens at the
// pipeline edges.
type Pipeline struct {
	db     *sql.DB
	consts config.Constants
	logger *zap.Logger
}

// Result carries the pipeline outputs.
type Result struct {
	Judges []fjc.Judge
	Rows   []match.NameRow
	Index  *match.Index
}

// NewPipeline creates a pipeline. The db may be nil for in-memory runs; in
// that case nothing is persisted.
func NewPipeline(db *sql.DB, consts config.Constants, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{db: db, consts: consts, logger: logger}
}

// Run executes the batch against the three source CSV paths.
func (p *Pipeline) Run(servicePath, careerPath, demographicsPath string) (*Result, error) {
	service, err := fjc.ReadCSV(servicePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service table: %w", err)
	}
	career, err := fjc.ReadCSV(careerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load career table: %w", err)
	}
	demographics, err := fjc.ReadCSV(demographicsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load demographics table: %w", err)
	}

	p.logger.Info("sources loaded",
		zap.Int("service", len(service.Rows)),
		zap.Int("career", len(career.Rows)),
		zap.Int("demographics", len(demographics.Rows)))

	result, err := Transform(service, career, demographics, p.consts)
	if err != nil {
		return nil, err
	}

	p.logger.Info("transform complete",
		zap.Int("judges", len(result.Judges)),
		zap.Int("nameRows", len(result.Rows)))

	if p.db != nil {
		if err := p.persist(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Transform is the pure core of the batch: merge, normalize, window,
// correct, permute and index, with no I/O. Stage order matters: windowing
// runs before permutation generation so excluded records contribute no
// lookup keys, and corrections run before permutations so corrected names
// feed them.
func Transform(service, career, demographics *fjc.Table, consts config.Constants) (*Result, error) {
	merged, err := fjc.Merge(service, career, demographics)
	if err != nil {
		return nil, fmt.Errorf("failed to merge source tables: %w", err)
	}

	merged = fjc.CanonicalizeColumns(merged, consts)
	fjc.ForwardFill(merged)

	judges := fjc.ToJudges(merged, consts)
	judges = fjc.WindowFilter(judges, consts)
	judges = fjc.ApplyOverrides(judges, consts.Overrides)
	judges = fjc.GeneratePerms(judges)

	rows := NameRows(judges)
	return &Result{
		Judges: judges,
		Rows:   rows,
		Index:  match.Build(rows),
	}, nil
}

// NameRows flattens judges into persisted name-index rows: one row per
// (judge, active-service year, permutation), with empty permutations
// skipped. Duplicate tuples are collapsed by match.Build; emitting them
// here in judge order keeps the build reproducible.
func NameRows(judges []fjc.Judge) []match.NameRow {
	var rows []match.NameRow
	for _, j := range judges {
		name := j.CanonicalFullName()
		for year := j.StartYear; year <= j.EndYear; year++ {
			for _, perm := range j.Perms {
				if perm == "" {
					continue
				}
				rows = append(rows, match.NameRow{
					Year:       year,
					CourtNum:   j.CourtNum,
					CircuitNum: j.CircuitNum,
					Perm:       perm,
					JudgeName:  name,
				})
			}
		}
	}
	return rows
}
