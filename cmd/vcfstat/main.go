// Package main provides the vcfstat command-line tool.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vcfstat",
		Short: "Descriptive statistics for VCF files",
		Long: `vcfstat extracts a per-variant table from a VCF or VCF.gz file and computes
mutation frequencies, NGS quality metrics, and the transition/transversion
spectrum over it.`,
		Example: `  # Print the variant table and metric summary
  vcfstat analyze input.vcf.gz

  # Serve the analysis API for the web UI
  vcfstat serve --addr :8080

  # Export a report
  vcfstat export input.vcf -o report.xlsx`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.vcfstat.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initViper)

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".vcfstat")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VCFSTAT")
	// Nested keys map to underscored env names: server.addr ← VCFSTAT_SERVER_ADDR
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything
	_ = viper.ReadInConfig()
}

// newLogger builds the process logger. Verbose mode uses the human-readable
// development encoder.
func newLogger() *zap.Logger {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
