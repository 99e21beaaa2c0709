package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcflab/vcfstat/internal/record"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestQualityMetrics_MeanDepthExcludesMissing(t *testing.T) {
	records := []record.VariantRecord{
		{Depth: intPtr(10)},
		{Depth: intPtr(20)},
		{Depth: nil},
		{Depth: intPtr(30)},
	}

	s := QualityMetrics(records)
	require.NotNil(t, s)
	assert.InDelta(t, 20.0, s.MeanDepth, 1e-9)
}

func TestQualityMetrics_MedianVAFAsPercent(t *testing.T) {
	records := []record.VariantRecord{
		{VAF: 0.10},
		{VAF: 0.20},
		{VAF: 0.40},
	}

	s := QualityMetrics(records)
	require.NotNil(t, s)
	assert.InDelta(t, 20.0, s.MedianVAF, 1e-9)
}

func TestQualityMetrics_MedianVAFEvenCount(t *testing.T) {
	records := []record.VariantRecord{
		{VAF: 0.10},
		{VAF: 0.30},
	}

	s := QualityMetrics(records)
	require.NotNil(t, s)
	assert.InDelta(t, 20.0, s.MedianVAF, 1e-9)
}

func TestQualityMetrics_Q30CountExcludesLowAndMissing(t *testing.T) {
	records := []record.VariantRecord{
		{Qual: floatPtr(45)},
		{Qual: floatPtr(30)},
		{Qual: floatPtr(29.9)},
		{Qual: nil},
	}

	s := QualityMetrics(records)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Q30Variants)
}

func TestQualityMetrics_NoDefinedDepths(t *testing.T) {
	records := []record.VariantRecord{{VAF: 0.5}, {VAF: 0.5}}

	s := QualityMetrics(records)
	require.NotNil(t, s)
	assert.Equal(t, 0.0, s.MeanDepth)
	assert.InDelta(t, 50.0, s.MedianVAF, 1e-9)
}

func TestQualityMetrics_Empty(t *testing.T) {
	assert.Nil(t, QualityMetrics(nil))
	assert.Nil(t, QualityMetrics([]record.VariantRecord{}))
}
