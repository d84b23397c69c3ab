package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shushuda/visitmerge/internal/config"
	applog "github.com/shushuda/visitmerge/internal/log"
	"github.com/shushuda/visitmerge/internal/pipeline"
	"github.com/shushuda/visitmerge/internal/report"
)

// runMergeCmd executes the merge for the root command.
func runMergeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runMerge(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags, in increasing order of precedence. Only flags the user
// actually set override the configuration file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; the default locations
	// are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputFile, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("pretty") {
		if cfg.Pretty, err = flags.GetBool("pretty"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("summaries-only") {
		if cfg.SummariesOnly, err = flags.GetBool("summaries-only"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) == 2 {
		cfg.PersonsPath = args[0]
		cfg.VisitsPath = args[1]
	}

	return cfg, nil
}

// setupLogger creates the redacting logger selected by the configuration.
func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return applog.NewRedactingJSONLogger(w, cfg.Verbose)
	}
	return applog.NewRedactingLogger(w, cfg.Verbose)
}

// runMerge reads both inputs, merges them and writes the report.
// Read and schema errors come back from the pipeline unwrapped so that
// their message reaches the user unchanged.
func runMerge(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger.Debug("starting merge",
		"persons", cfg.PersonsPath,
		"visits", cfg.VisitsPath,
		"encoding", cfg.Encoding,
		"format", format,
	)

	writeOpts := []pipeline.WriteStepOption{
		pipeline.WithWriterOptions(report.Options{
			Pretty:        cfg.Pretty,
			SummariesOnly: cfg.SummariesOnly,
		}),
	}
	if cfg.OutputFile != "" {
		writeOpts = append(writeOpts, pipeline.WithOutputFile(cfg.OutputFile))
	}

	p := pipeline.DefaultPipeline(
		pipeline.NewWriteStep(format, stdout, writeOpts...),
		pipeline.WithLogger(logger),
	)

	run := &pipeline.Run{
		PersonsPath: cfg.PersonsPath,
		VisitsPath:  cfg.VisitsPath,
		Encoding:    cfg.Encoding,
	}
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		logger.Info("report written", "path", cfg.OutputFile, "format", format)
	}
	return nil
}
