package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcflab/vcfstat/internal/analysis"
	"github.com/vcflab/vcfstat/internal/metrics"
	"github.com/vcflab/vcfstat/internal/record"
)

func TestTabWriter_WriteAll(t *testing.T) {
	af := 0.4
	depth := 8
	qual := 72.5

	records := []record.VariantRecord{
		{Chrom: "1", Pos: 100, Ref: "A", Alt: []string{"G"}, Type: record.TypeSNP,
			AF: &af, VAF: 0.25, Depth: &depth, Qual: &qual, Mutation: "A→G"},
		{Chrom: "2", Pos: 200, Ref: "C", Alt: []string{"T", "G"}, Type: record.TypeSNP,
			VAF: 0, Mutation: "C→T"},
	}

	var buf bytes.Buffer
	w := NewTabWriter(&buf)
	require.NoError(t, w.WriteAll(records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "#CHROM\tPOS\tREF\tALT"))
	assert.Equal(t, "1\t100\tA\tG\tsnp\t0.4\t0.25\t8\t72.5\tA→G", lines[1])
	// Missing AF/DP/QUAL render as "-", multi-allelic alts rejoin with commas
	assert.Equal(t, "2\t200\tC\tT,G\tsnp\t-\t0\t-\t-\tC→T", lines[2])
}

func TestWriteSummary(t *testing.T) {
	ratio := 2.0
	report := &analysis.Report{
		Source:   "test.vcf",
		Stats:    metrics.Stats{TotalVariants: 3, Chromosomes: 2, SNPs: 3},
		Quality:  &metrics.QualitySummary{MeanDepth: 20, MedianVAF: 25, Q30Variants: 1},
		Spectrum: metrics.SpectrumSummary{Transitions: 2, Transversions: 1, Ratio: &ratio},
		Mutations: []metrics.MutationCount{
			{Mutation: "A→G", Count: 2, Percent: 66.67},
			{Mutation: "C→A", Count: 1, Percent: 33.33},
		},
	}

	var buf bytes.Buffer
	WriteSummary(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "Total variants: 3")
	assert.Contains(t, out, "Mean depth: 20.0x")
	assert.Contains(t, out, "Ti/Tv: 2.00")
	assert.Contains(t, out, "A→G\t2\t66.7%")
}
