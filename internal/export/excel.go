package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vcflab/vcfstat/internal/analysis"
)

var variantColumns = []string{
	"Chrom", "Pos", "Ref", "Alt", "Type", "AF", "VAF", "Depth", "Qual", "Mutation",
}

// WriteWorkbook writes an analysis report to an xlsx workbook with a Summary
// sheet and a Variants sheet.
func WriteWorkbook(r *analysis.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	const variantSheet = "Variants"

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(variantSheet); err != nil {
		return fmt.Errorf("create variants sheet: %w", err)
	}

	if err := writeSummary(f, summarySheet, r); err != nil {
		return err
	}
	if err := writeVariants(f, variantSheet, r); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, sheet string, r *analysis.Report) error {
	rows := [][]any{
		{"Source", r.Source},
		{"Run ID", r.RunID},
		{"Total Variants", r.Stats.TotalVariants},
		{"Chromosomes", r.Stats.Chromosomes},
		{"SNPs", r.Stats.SNPs},
		{"INDELs", r.Stats.Indels},
		{"Transitions", r.Spectrum.Transitions},
		{"Transversions", r.Spectrum.Transversions},
		{"Ti/Tv Ratio", r.Spectrum.RatioLabel()},
	}
	if r.Quality != nil {
		rows = append(rows,
			[]any{"Mean Depth", r.Quality.MeanDepth},
			[]any{"Median VAF (%)", r.Quality.MedianVAF},
			[]any{"Q30 Variants", r.Quality.Q30Variants},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return nil
}

func writeVariants(f *excelize.File, sheet string, r *analysis.Report) error {
	header := make([]any, len(variantColumns))
	for i, c := range variantColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write variant header: %w", err)
	}

	for i, rec := range r.Records {
		row := []any{
			rec.Chrom, rec.Pos, rec.Ref, strings.Join(rec.Alt, ","), rec.Type,
			nil, rec.VAF, nil, nil, rec.Mutation,
		}
		if rec.AF != nil {
			row[5] = *rec.AF
		}
		if rec.Depth != nil {
			row[7] = *rec.Depth
		}
		if rec.Qual != nil {
			row[8] = *rec.Qual
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("variant cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write variant row: %w", err)
		}
	}
	return nil
}
