package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"har-analyzer/application"
	"har-analyzer/domain"
	"har-analyzer/infrastructure/console"
	"har-analyzer/infrastructure/harfile"
	"har-analyzer/infrastructure/xlsx"
)

var version = "dev"

// NewRootCmd creates the har-analyzer command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "har-analyzer",
		Short: "Summarize a HAR capture as an Excel workbook",
		Long: `har-analyzer reads an HTTP Archive (HAR) file and writes a spreadsheet with
one row per request/response exchange: time, source and destination IP,
method, status code, URL and the request and response payloads. JSON
payloads are pretty-printed.

Examples:
  # Write har_analysis.xlsx in the current directory
  har-analyzer -i session.har

  # Choose the output file and show progress
  har-analyzer -i session.har -o report.xlsx -v`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvertCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Path to the input HAR file")
	cmd.Flags().StringP("output", "o", application.DefaultOutputPath, "Path to the output Excel file")
	cmd.Flags().BoolP("verbose", "v", false, "Print progress and diagnostics to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runConvertCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, cfg.Verbose)

	summary, err := runConvert(cfg, stderr, logger)
	if err != nil {
		return err
	}
	logger.Info("conversion finished", "output", cfg.OutputPath, "summary", summary.String())
	return nil
}

func buildConfig(cmd *cobra.Command) (application.Config, error) {
	cfg := application.NewConfig()
	var err error
	if cfg.InputPath, err = cmd.Flags().GetString("input"); err != nil {
		return cfg, err
	}
	if cfg.OutputPath, err = cmd.Flags().GetString("output"); err != nil {
		return cfg, err
	}
	if cfg.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runConvert(cfg application.Config, stderr io.Writer, logger *slog.Logger) (application.Summary, error) {
	service := application.NewConvertService(
		cfg,
		harfile.NewFileSource(cfg.InputPath, logger),
		xlsx.NewFileWriter(cfg.OutputPath, logger),
		domain.NewExtractor(logger),
		console.NewConsoleUI(stderr, cfg.Verbose),
		logger,
	)
	return service.Run()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
