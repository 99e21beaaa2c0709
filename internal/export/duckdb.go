// Package export persists analysis reports outside the request lifecycle:
// a DuckDB database for queryable access and an xlsx workbook for sharing.
package export

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/vcflab/vcfstat/internal/analysis"
)

// Store manages a DuckDB connection holding exported analysis runs.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func OpenStore(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create export directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id VARCHAR PRIMARY KEY,
		source VARCHAR,
		total_variants INTEGER,
		chromosomes INTEGER,
		snps INTEGER,
		indels INTEGER,
		mean_depth DOUBLE,
		median_vaf DOUBLE,
		q30_variants INTEGER,
		transitions INTEGER,
		transversions INTEGER,
		ti_tv_ratio VARCHAR
	)`); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS variants (
		run_id VARCHAR,
		chrom VARCHAR,
		pos BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		type VARCHAR,
		af DOUBLE,
		vaf DOUBLE,
		depth INTEGER,
		qual DOUBLE,
		mutation VARCHAR
	)`)
	return err
}

// WriteReport stores one analysis run: a summary row plus the full variant
// table, batch-inserted with the Appender API.
func (s *Store) WriteReport(r *analysis.Report) error {
	var meanDepth, medianVAF float64
	var q30 int
	if r.Quality != nil {
		meanDepth = r.Quality.MeanDepth
		medianVAF = r.Quality.MedianVAF
		q30 = r.Quality.Q30Variants
	}

	if _, err := s.db.Exec(`INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Source,
		r.Stats.TotalVariants, r.Stats.Chromosomes, r.Stats.SNPs, r.Stats.Indels,
		meanDepth, medianVAF, q30,
		r.Spectrum.Transitions, r.Spectrum.Transversions, r.Spectrum.RatioLabel(),
	); err != nil {
		return fmt.Errorf("insert run summary: %w", err)
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, rec := range r.Records {
		var af, qual any
		var depth any
		if rec.AF != nil {
			af = *rec.AF
		}
		if rec.Qual != nil {
			qual = *rec.Qual
		}
		if rec.Depth != nil {
			depth = int32(*rec.Depth)
		}

		if err := appender.AppendRow(
			r.RunID, rec.Chrom, rec.Pos, rec.Ref, rec.Alt[0], rec.Type,
			af, rec.VAF, depth, qual, rec.Mutation,
		); err != nil {
			return fmt.Errorf("append variant row: %w", err)
		}
	}

	return appender.Flush()
}

// VariantCount returns the number of stored variant rows for a run.
func (s *Store) VariantCount(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM variants WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}
	return n, nil
}
