package record

import (
	"fmt"

	"github.com/vcflab/vcfstat/internal/vcf"
)

// Extract reads a VCF or VCF.gz file and returns one VariantRecord per data
// line, in file order.
//
// Errors have whole-file granularity: any parse failure returns a nil table
// and the error, never a partial one. A file that parses but contains no
// variants returns an empty, non-nil slice.
func Extract(path string) ([]VariantRecord, error) {
	parser, err := vcf.NewParser(path)
	if err != nil {
		return nil, fmt.Errorf("parse vcf: %w", err)
	}
	defer parser.Close()

	return ExtractFrom(parser)
}

// ExtractFrom drains a variant parser into a record table. See Extract for
// the error contract.
func ExtractFrom(parser vcf.VariantParser) ([]VariantRecord, error) {
	records := []VariantRecord{}
	for {
		v, err := parser.Next()
		if err != nil {
			return nil, fmt.Errorf("parse vcf: %w", err)
		}
		if v == nil {
			return records, nil
		}
		records = append(records, FromVariant(v))
	}
}
