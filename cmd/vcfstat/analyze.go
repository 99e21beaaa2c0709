package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vcflab/vcfstat/internal/analysis"
	"github.com/vcflab/vcfstat/internal/output"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		outputFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <vcf-file>",
		Short: "Extract the variant table and metric summaries from a VCF file",
		Long: `Parse a VCF or VCF.gz file into a per-variant table and compute mutation
frequencies, NGS quality metrics, and the Ti/Tv spectrum. The table goes to
stdout (or --output); the metric summary goes to stderr.`,
		Example: `  vcfstat analyze input.vcf
  vcfstat analyze --json input.vcf.gz
  vcfstat analyze -o table.tsv input.vcf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], outputFile, asJSON)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full report as JSON")

	return cmd
}

func runAnalyze(path, outputFile string, asJSON bool) error {
	logger := newLogger()
	defer logger.Sync()

	analyzer := analysis.NewAnalyzer()
	analyzer.SetLogger(logger)

	report, err := analyzer.Analyze(path, filepath.Base(path))
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if err := output.NewTabWriter(out).WriteAll(report.Records); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	output.WriteSummary(os.Stderr, report)

	return nil
}
