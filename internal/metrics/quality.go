package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vcflab/vcfstat/internal/record"
)

// Q30Threshold is the minimum quality score counted as high confidence.
const Q30Threshold = 30

// QualitySummary holds sequencing quality metrics for one record table.
type QualitySummary struct {
	MeanDepth   float64 `json:"mean_depth"`   // mean total read depth over records with a defined depth
	MedianVAF   float64 `json:"median_vaf"`   // median variant allele frequency, in percent
	Q30Variants int     `json:"q30_variants"` // records with QUAL >= 30 (missing excluded)
}

// QualityMetrics summarizes NGS quality over the record table. Returns nil
// for an empty table; callers treat nil as "no metrics available".
func QualityMetrics(records []record.VariantRecord) *QualitySummary {
	if len(records) == 0 {
		return nil
	}

	s := &QualitySummary{}

	var depths []float64
	vafs := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Depth != nil {
			depths = append(depths, float64(*r.Depth))
		}
		vafs = append(vafs, r.VAF)
		if r.Qual != nil && *r.Qual >= Q30Threshold {
			s.Q30Variants++
		}
	}

	if len(depths) > 0 {
		s.MeanDepth = stat.Mean(depths, nil)
	}
	s.MedianVAF = median(vafs) * 100

	return s
}

// median returns the middle value of vs, averaging the two central values for
// even-length input. vs must be non-empty; it is not modified.
func median(vs []float64) float64 {
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
