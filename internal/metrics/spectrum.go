package metrics

import (
	"math"
	"strconv"

	"github.com/vcflab/vcfstat/internal/record"
)

// substitution is a single-base ref→alt pair.
type substitution struct {
	ref, alt string
}

// Canonical substitution pair tables. Anything outside these (ambiguity
// codes, non-ACGT bases) is excluded from both counts.
var (
	transitions = map[substitution]bool{
		{"A", "G"}: true, {"G", "A"}: true,
		{"C", "T"}: true, {"T", "C"}: true,
	}
	transversions = map[substitution]bool{
		{"A", "C"}: true, {"A", "T"}: true,
		{"C", "A"}: true, {"C", "G"}: true,
		{"G", "C"}: true, {"G", "T"}: true,
		{"T", "A"}: true, {"T", "G"}: true,
	}
)

// SpectrumSummary holds transition/transversion counts for SNP records.
// Ratio is nil whenever it is undefined (no SNPs, or zero transversions);
// RatioLabel renders that as "NA".
type SpectrumSummary struct {
	Transitions   int      `json:"transitions"`
	Transversions int      `json:"transversions"`
	Ratio         *float64 `json:"ti_tv_ratio"`
}

// RatioLabel returns the display form of the Ti/Tv ratio: "NA" when
// undefined, otherwise the ratio rounded to two decimals.
func (s SpectrumSummary) RatioLabel() string {
	if s.Ratio == nil {
		return "NA"
	}
	return strconv.FormatFloat(*s.Ratio, 'f', 2, 64)
}

// Spectrum classifies every SNP record's primary substitution as a
// transition or transversion and computes the Ti/Tv ratio rounded to two
// decimal places. Non-SNP rows and non-canonical pairs are skipped.
func Spectrum(records []record.VariantRecord) SpectrumSummary {
	var s SpectrumSummary

	for _, r := range records {
		if r.Type != record.TypeSNP || len(r.Alt) == 0 {
			continue
		}
		sub := substitution{r.Ref, r.Alt[0]}
		switch {
		case transitions[sub]:
			s.Transitions++
		case transversions[sub]:
			s.Transversions++
		}
	}

	if s.Transversions > 0 {
		ratio := math.Round(float64(s.Transitions)/float64(s.Transversions)*100) / 100
		s.Ratio = &ratio
	}

	return s
}
