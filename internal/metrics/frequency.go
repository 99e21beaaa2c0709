// Package metrics computes descriptive statistics over an extracted variant
// record table. All calculators are stateless and read-only: they tolerate
// empty input by returning empty or nil results, never an error.
package metrics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vcflab/vcfstat/internal/record"
)

// MutationCount is one entry of the mutation frequency table.
type MutationCount struct {
	Mutation string  `json:"mutation"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// MutationFrequencies counts occurrences of each mutation label (e.g. "A→G")
// and its percentage share of all mutations, sorted descending by count with
// ties broken by label. Empty input yields an empty table.
func MutationFrequencies(records []record.VariantRecord) []MutationCount {
	if len(records) == 0 {
		return []MutationCount{}
	}

	counts := lo.CountValuesBy(records, func(r record.VariantRecord) string {
		return r.Mutation
	})
	total := float64(len(records))

	result := make([]MutationCount, 0, len(counts))
	for label, n := range counts {
		result = append(result, MutationCount{
			Mutation: label,
			Count:    n,
			Percent:  float64(n) / total * 100,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Mutation < result[j].Mutation
	})

	return result
}
