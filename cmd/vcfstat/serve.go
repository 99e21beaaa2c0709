package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vcflab/vcfstat/internal/analysis"
	"github.com/vcflab/vcfstat/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Start the HTTP server backing the web UI. Uploads are staged in temporary
files, analyzed, and returned as JSON; nothing is stored between requests.`,
		Example: `  vcfstat serve
  vcfstat serve --addr :9000
  VCFSTAT_SERVER_ADDR=:9000 vcfstat serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080, config key server.addr)")

	return cmd
}

func runServe(addr string) error {
	logger := newLogger()
	defer logger.Sync()

	if addr == "" {
		addr = viper.GetString("server.addr")
	}
	if addr == "" {
		addr = ":8080"
	}

	analyzer := analysis.NewAnalyzer()
	analyzer.SetLogger(logger)

	srv := server.New(analyzer, logger, viper.GetString("server.tmpdir"))
	return srv.Run(addr)
}
