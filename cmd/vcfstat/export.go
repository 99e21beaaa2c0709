package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcflab/vcfstat/internal/analysis"
	"github.com/vcflab/vcfstat/internal/export"
)

func newExportCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export <vcf-file>",
		Short: "Analyze a VCF file and export the report",
		Long: `Run the full analysis and write the report to a file. The export format
follows the output extension: .duckdb (queryable database) or .xlsx
(workbook with Summary and Variants sheets).`,
		Example: `  vcfstat export input.vcf -o report.duckdb
  vcfstat export input.vcf.gz -o report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file, .duckdb or .xlsx (required)")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runExport(path, outputFile string) error {
	logger := newLogger()
	defer logger.Sync()

	analyzer := analysis.NewAnalyzer()
	analyzer.SetLogger(logger)

	report, err := analyzer.Analyze(path, filepath.Base(path))
	if err != nil {
		return err
	}

	switch ext := filepath.Ext(outputFile); ext {
	case ".duckdb", ".db":
		store, err := export.OpenStore(outputFile)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.WriteReport(report); err != nil {
			return err
		}
	case ".xlsx":
		if err := export.WriteWorkbook(report, outputFile); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q (use .duckdb or .xlsx)", ext)
	}

	logger.Info("report exported",
		zap.String("output", outputFile),
		zap.String("run_id", report.RunID),
		zap.Int("variants", report.Stats.TotalVariants))

	return nil
}
