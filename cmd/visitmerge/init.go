package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shushuda/visitmerge/internal/config"
	"github.com/shushuda/visitmerge/internal/report"
)

//go:embed templates/visitmerge.yaml
var configTemplate embed.FS

// configTemplatePath is the template location inside configTemplate.
const configTemplatePath = "templates/visitmerge.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a visitmerge configuration file",
		Long: `Init writes a commented .visitmerge.yaml configuration file to the
current directory.

The generated file documents every option (format, encoding, output,
pretty, summaries_only, log_format) with its default value.

Examples:
  # Create .visitmerge.yaml in current directory
  visitmerge init

  # Create the file in the XDG config directory
  visitmerge init --xdg

  # Create config file at a specific path
  visitmerge init -o myconfig.yaml

  # Force overwrite existing file
  visitmerge init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")
	cmd.Flags().Bool("xdg", false,
		"Write the file to the XDG config directory instead (ignores --output)")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	useXDG, err := cmd.Flags().GetBool("xdg")
	if err != nil {
		return err
	}
	if useXDG {
		outputPath = config.XDGConfigFile()
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nKeys (flags on the command line take precedence):")
	fmt.Fprintf(out, "  format          %s (default %s)\n", formatNames(), config.DefaultFormat)
	fmt.Fprintf(out, "  encoding        input encoding label, e.g. windows-1250 (default %s)\n", config.DefaultEncoding)
	fmt.Fprintln(out, "  output          result file instead of stdout")
	fmt.Fprintln(out, "  pretty          indent json output")
	fmt.Fprintln(out, "  summaries_only  json output without run metadata")
	fmt.Fprintf(out, "  log_format      %s or %s\n", config.LogFormatText, config.LogFormatJSON)

	return nil
}

// formatNames lists the supported output formats separated by "|".
func formatNames() string {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}
