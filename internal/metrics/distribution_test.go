package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcflab/vcfstat/internal/record"
)

func typed(chrom, typ string) record.VariantRecord {
	return record.VariantRecord{Chrom: chrom, Type: typ}
}

func TestBasicStats(t *testing.T) {
	records := []record.VariantRecord{
		typed("1", record.TypeSNP),
		typed("1", record.TypeSNP),
		typed("2", record.TypeIndel),
		typed("X", record.TypeOther),
	}

	s := BasicStats(records)
	assert.Equal(t, 4, s.TotalVariants)
	assert.Equal(t, 3, s.Chromosomes)
	assert.Equal(t, 2, s.SNPs)
	assert.Equal(t, 1, s.Indels)
}

func TestTypeDistribution_CollapsesSmallCategories(t *testing.T) {
	// 24 snps, 1 other: "other" is 4% of the table and folds into Other
	records := make([]record.VariantRecord, 0, 25)
	for i := 0; i < 24; i++ {
		records = append(records, typed("1", record.TypeSNP))
	}
	records = append(records, typed("1", record.TypeOther))

	dist := TypeDistribution(records)
	require.Len(t, dist, 2)
	assert.Equal(t, record.TypeSNP, dist[0].Type)
	assert.Equal(t, 24, dist[0].Count)
	assert.Equal(t, OtherCategory, dist[1].Type)
	assert.Equal(t, 1, dist[1].Count)
	assert.InDelta(t, 4.0, dist[1].Percent, 1e-9)
}

func TestTypeDistribution_KeepsMajorCategories(t *testing.T) {
	records := []record.VariantRecord{
		typed("1", record.TypeSNP),
		typed("1", record.TypeSNP),
		typed("1", record.TypeIndel),
	}

	dist := TypeDistribution(records)
	require.Len(t, dist, 2)
	assert.Equal(t, record.TypeSNP, dist[0].Type)
	assert.Equal(t, record.TypeIndel, dist[1].Type)
}

func TestTypeDistribution_Empty(t *testing.T) {
	assert.Empty(t, TypeDistribution(nil))
}

func TestChromosomeCounts_SortedByName(t *testing.T) {
	records := []record.VariantRecord{
		typed("2", record.TypeSNP),
		typed("1", record.TypeSNP),
		typed("2", record.TypeSNP),
		typed("X", record.TypeSNP),
	}

	counts := ChromosomeCounts(records)
	require.Len(t, counts, 3)
	assert.Equal(t, ChromCount{Chrom: "1", Count: 1}, counts[0])
	assert.Equal(t, ChromCount{Chrom: "2", Count: 2}, counts[1])
	assert.Equal(t, ChromCount{Chrom: "X", Count: 1}, counts[2])
}

func TestAFValues(t *testing.T) {
	af1, af2 := 0.25, 0.5
	records := []record.VariantRecord{
		{AF: &af1},
		{AF: nil},
		{AF: &af2},
	}

	values := AFValues(records)
	assert.Equal(t, []float64{0.25, 0.5}, values)
}

func TestAFValues_Empty(t *testing.T) {
	values := AFValues(nil)
	require.NotNil(t, values)
	assert.Empty(t, values)
}
