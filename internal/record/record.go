// Package record turns parsed VCF variants into a flat per-variant table
// with derived depth and allele-frequency fields.
package record

import (
	"fmt"

	"github.com/vcflab/vcfstat/internal/vcf"
)

// Variant type categories.
const (
	TypeSNP   = "snp"
	TypeIndel = "indel"
	TypeOther = "other"
)

// VariantRecord is one row of the analysis table. It is built once during
// extraction and never mutated afterward. Optional fields are pointers so a
// missing value renders as null, not 0.
type VariantRecord struct {
	Chrom    string   `json:"chrom"`
	Pos      int64    `json:"pos"`
	Ref      string   `json:"ref"`
	Alt      []string `json:"alt"`      // ordered, Alt[0] is the primary allele
	Type     string   `json:"type"`     // snp | indel | other
	AF       *float64 `json:"af"`       // reported population allele frequency
	VAF      float64  `json:"vaf"`      // computed sample variant allele frequency
	Depth    *int     `json:"depth"`    // total read depth from AD, nil when unavailable
	Qual     *float64 `json:"qual"`     // QUAL column, nil when "."
	Mutation string   `json:"mutation"` // display label REF→ALT[0]
}

// Classify returns the variant type category for a ref/alt pair.
func Classify(ref, alt string) string {
	v := vcf.Variant{Ref: ref, Alt: alt}
	switch {
	case v.IsSNV():
		return TypeSNP
	case v.IsIndel():
		return TypeIndel
	default:
		return TypeOther
	}
}

// FromVariant builds a VariantRecord from a parsed VCF variant.
//
// Depth and VAF come from the AD field of the first sample when present:
// VAF = alt/(ref+alt), 0 when total depth is 0. Without AD, VAF falls back
// to the reported AF (first value), and to 0 when neither exists.
func FromVariant(v *vcf.Variant) VariantRecord {
	alt := v.PrimaryAlt()

	rec := VariantRecord{
		Chrom:    v.Chrom,
		Pos:      v.Pos,
		Ref:      v.Ref,
		Alt:      v.Alts(),
		Type:     Classify(v.Ref, alt),
		Qual:     v.Qual,
		Mutation: fmt.Sprintf("%s→%s", v.Ref, alt),
	}

	if af, ok := v.InfoFloat("AF"); ok {
		rec.AF = &af
	}

	if refCount, altCount, ok := v.AlleleDepths(0); ok {
		total := refCount + altCount
		rec.Depth = &total
		if total > 0 {
			rec.VAF = float64(altCount) / float64(total)
		}
	} else if rec.AF != nil {
		rec.VAF = *rec.AF
	}

	return rec
}
