// Package analysis runs one complete pass over a variant file: extraction
// into a record table followed by every metric calculator, producing the data
// products the presentation layer renders.
package analysis

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcflab/vcfstat/internal/metrics"
	"github.com/vcflab/vcfstat/internal/record"
)

// ErrNoVariants is returned when a file parses cleanly but contains zero
// variant rows. It is a terminal condition, not a parse failure: callers stop
// before any metric display step.
var ErrNoVariants = errors.New("no variants detected")

// Report bundles the record table and the derived metrics of one analysis
// run. It is built once per request and discarded afterward; nothing in it is
// shared across runs.
type Report struct {
	RunID     string                  `json:"run_id"`
	Source    string                  `json:"source"`
	Records   []record.VariantRecord  `json:"records"`
	Stats     metrics.Stats           `json:"stats"`
	Types     []metrics.TypeCount     `json:"type_distribution"`
	Chroms    []metrics.ChromCount    `json:"chromosome_counts"`
	Mutations []metrics.MutationCount `json:"mutation_frequencies"`
	Quality   *metrics.QualitySummary `json:"quality"`
	Spectrum  metrics.SpectrumSummary `json:"spectrum"`
	AFValues  []float64               `json:"af_values"`
}

// Analyzer runs request-scoped analyses. Safe for reuse; it holds no state
// between runs besides its logger.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer with a no-op logger.
func NewAnalyzer() *Analyzer {
	return &Analyzer{logger: zap.NewNop()}
}

// SetLogger sets the logger for progress and warning messages.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Analyze extracts the record table from the file at path and computes all
// metrics in one synchronous pass. source is the display name of the input
// (the uploaded filename, not the staging path).
//
// Parse failures surface as the extraction error with no partial report.
// A parseable file with zero variants returns ErrNoVariants.
func (a *Analyzer) Analyze(path, source string) (*Report, error) {
	records, err := record.Extract(path)
	if err != nil {
		a.logger.Warn("extraction failed", zap.String("source", source), zap.Error(err))
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoVariants
	}

	a.logger.Info("extracted variant table",
		zap.String("source", source),
		zap.Int("variants", len(records)))

	return &Report{
		RunID:     uuid.New().String(),
		Source:    source,
		Records:   records,
		Stats:     metrics.BasicStats(records),
		Types:     metrics.TypeDistribution(records),
		Chroms:    metrics.ChromosomeCounts(records),
		Mutations: metrics.MutationFrequencies(records),
		Quality:   metrics.QualityMetrics(records),
		Spectrum:  metrics.Spectrum(records),
		AFValues:  metrics.AFValues(records),
	}, nil
}
