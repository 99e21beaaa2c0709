// Package output provides report formatters for the command line.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vcflab/vcfstat/internal/analysis"
	"github.com/vcflab/vcfstat/internal/record"
)

// TabWriter writes the variant record table in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#CHROM",
			"POS",
			"REF",
			"ALT",
			"TYPE",
			"AF",
			"VAF",
			"DP",
			"QUAL",
			"Mutation",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single record row. Missing optional values render as "-".
func (tw *TabWriter) Write(r record.VariantRecord) error {
	af := "-"
	if r.AF != nil {
		af = strconv.FormatFloat(*r.AF, 'g', -1, 64)
	}
	depth := "-"
	if r.Depth != nil {
		depth = strconv.Itoa(*r.Depth)
	}
	qual := "-"
	if r.Qual != nil {
		qual = strconv.FormatFloat(*r.Qual, 'g', -1, 64)
	}

	fields := []string{
		r.Chrom,
		strconv.FormatInt(r.Pos, 10),
		r.Ref,
		strings.Join(r.Alt, ","),
		r.Type,
		af,
		strconv.FormatFloat(r.VAF, 'g', -1, 64),
		depth,
		qual,
		r.Mutation,
	}

	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// WriteAll writes the header and every record, then flushes.
func (tw *TabWriter) WriteAll(records []record.VariantRecord) error {
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, r := range records {
		if err := tw.Write(r); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// WriteSummary writes the metric summaries of a report in readable form.
func WriteSummary(w io.Writer, r *analysis.Report) {
	fmt.Fprintf(w, "Source: %s\n", r.Source)
	fmt.Fprintf(w, "Total variants: %d  Chromosomes: %d  SNPs: %d  INDELs: %d\n",
		r.Stats.TotalVariants, r.Stats.Chromosomes, r.Stats.SNPs, r.Stats.Indels)

	if r.Quality != nil {
		fmt.Fprintf(w, "Mean depth: %.1fx  Median VAF: %.1f%%  Q30 variants: %d\n",
			r.Quality.MeanDepth, r.Quality.MedianVAF, r.Quality.Q30Variants)
	}

	fmt.Fprintf(w, "Transitions: %d  Transversions: %d  Ti/Tv: %s\n",
		r.Spectrum.Transitions, r.Spectrum.Transversions, r.Spectrum.RatioLabel())

	if len(r.Mutations) > 0 {
		fmt.Fprintf(w, "Top mutations:\n")
		for i, m := range r.Mutations {
			if i == 10 {
				break
			}
			fmt.Fprintf(w, "  %s\t%d\t%.1f%%\n", m.Mutation, m.Count, m.Percent)
		}
	}
}
