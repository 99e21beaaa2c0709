package metrics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vcflab/vcfstat/internal/record"
)

// OtherCategory collects variant types whose share falls below the pie-chart
// labeling threshold.
const OtherCategory = "Other"

// typeCollapseThreshold is the minimum share (percent) a type needs to keep
// its own category in TypeDistribution.
const typeCollapseThreshold = 5.0

// TypeCount is one slice of the variant type distribution.
type TypeCount struct {
	Type    string  `json:"type"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ChromCount is the number of variants on one chromosome.
type ChromCount struct {
	Chrom string `json:"chrom"`
	Count int    `json:"count"`
}

// Stats holds the headline counts shown before any chart.
type Stats struct {
	TotalVariants int `json:"total_variants"`
	Chromosomes   int `json:"chromosomes"`
	SNPs          int `json:"snps"`
	Indels        int `json:"indels"`
}

// BasicStats computes headline counts over the record table.
func BasicStats(records []record.VariantRecord) Stats {
	chroms := lo.UniqBy(records, func(r record.VariantRecord) string { return r.Chrom })
	return Stats{
		TotalVariants: len(records),
		Chromosomes:   len(chroms),
		SNPs:          lo.CountBy(records, func(r record.VariantRecord) bool { return r.Type == record.TypeSNP }),
		Indels:        lo.CountBy(records, func(r record.VariantRecord) bool { return r.Type == record.TypeIndel }),
	}
}

// TypeDistribution counts records per variant type, sorted descending by
// count. Types whose share is below 5% are collapsed into a single "Other"
// category, matching how the distribution is charted.
func TypeDistribution(records []record.VariantRecord) []TypeCount {
	if len(records) == 0 {
		return []TypeCount{}
	}

	counts := lo.CountValuesBy(records, func(r record.VariantRecord) string { return r.Type })
	total := float64(len(records))

	var kept []TypeCount
	var other int
	for typ, n := range counts {
		pct := float64(n) / total * 100
		if pct < typeCollapseThreshold {
			other += n
			continue
		}
		kept = append(kept, TypeCount{Type: typ, Count: n, Percent: pct})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Count != kept[j].Count {
			return kept[i].Count > kept[j].Count
		}
		return kept[i].Type < kept[j].Type
	})

	if other > 0 {
		kept = append(kept, TypeCount{
			Type:    OtherCategory,
			Count:   other,
			Percent: float64(other) / total * 100,
		})
	}

	return kept
}

// ChromosomeCounts counts records per chromosome, sorted by chromosome name.
func ChromosomeCounts(records []record.VariantRecord) []ChromCount {
	counts := lo.CountValuesBy(records, func(r record.VariantRecord) string { return r.Chrom })

	result := make([]ChromCount, 0, len(counts))
	for chrom, n := range counts {
		result = append(result, ChromCount{Chrom: chrom, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Chrom < result[j].Chrom })

	return result
}

// AFValues returns the reported allele frequencies of records that carry
// one, in file order. This feeds the allele frequency histogram.
func AFValues(records []record.VariantRecord) []float64 {
	values := []float64{}
	for _, r := range records {
		if r.AF != nil {
			values = append(values, *r.AF)
		}
	}
	return values
}
