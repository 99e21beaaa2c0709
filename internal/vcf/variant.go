// Package vcf provides VCF file parsing functionality.
package vcf

import (
	"strconv"
	"strings"
)

// Variant represents a single data line from a VCF file.
type Variant struct {
	Chrom   string                 // Chromosome name (e.g., "12", "chr12")
	Pos     int64                  // 1-based genomic position
	ID      string                 // Variant identifier (e.g., rs ID)
	Ref     string                 // Reference allele
	Alt     string                 // Alternate allele(s), comma-separated as written
	Qual    *float64               // Quality score, nil when the QUAL column is "."
	Filter  string                 // Filter status (PASS or filter name)
	Info    map[string]interface{} // INFO field key-value pairs (flags map to true)
	Format  []string               // FORMAT column keys, nil when absent
	Samples []string               // Raw per-sample columns, nil when absent
}

// Alts returns the alternate alleles in order. The first element is the
// primary alternate allele.
func (v *Variant) Alts() []string {
	return strings.Split(v.Alt, ",")
}

// PrimaryAlt returns the first alternate allele.
func (v *Variant) PrimaryAlt() string {
	if i := strings.IndexByte(v.Alt, ','); i >= 0 {
		return v.Alt[:i]
	}
	return v.Alt
}

// IsSNV returns true if the variant is a single nucleotide variant.
func (v *Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.PrimaryAlt()) == 1
}

// IsIndel returns true if the variant is an insertion or deletion.
func (v *Variant) IsIndel() bool {
	return len(v.Ref) != len(v.PrimaryAlt())
}

// AlleleDepths returns the ref and primary-alt read counts from the AD
// format field of the given sample. ok is false when the variant has no
// FORMAT column, no AD key, the sample index is out of range, or the field
// is malformed or missing (".").
func (v *Variant) AlleleDepths(sample int) (refCount, altCount int, ok bool) {
	if sample < 0 || sample >= len(v.Samples) {
		return 0, 0, false
	}

	adIdx := -1
	for i, key := range v.Format {
		if key == "AD" {
			adIdx = i
			break
		}
	}
	if adIdx < 0 {
		return 0, 0, false
	}

	fields := strings.Split(v.Samples[sample], ":")
	if adIdx >= len(fields) || fields[adIdx] == "." {
		return 0, 0, false
	}

	counts := strings.Split(fields[adIdx], ",")
	if len(counts) < 2 {
		return 0, 0, false
	}

	refCount, err := strconv.Atoi(counts[0])
	if err != nil {
		return 0, 0, false
	}
	altCount, err = strconv.Atoi(counts[1])
	if err != nil {
		return 0, 0, false
	}

	return refCount, altCount, true
}

// InfoFloat returns the first numeric value of an INFO key (AF with multiple
// alts reports one value per allele). ok is false when the key is absent, a
// flag, or not numeric.
func (v *Variant) InfoFloat(key string) (float64, bool) {
	raw, present := v.Info[key]
	if !present {
		return 0, false
	}

	s, isString := raw.(string)
	if !isString {
		return 0, false
	}

	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
