package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shushuda/visitmerge/internal/config"
)

// NewRootCmd creates the root command for visitmerge.
// The root command performs the merge itself; init and version are
// subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visitmerge <persons.csv> <visits.csv>",
		Short: "Count visits per person from two CSV files",
		Long: `visitmerge joins a persons CSV with a visits CSV and prints, for every
person, the number of visits that reference them.

The persons file must have exactly the header "id,name,surname" and the
visits file exactly "id,person_id,site". A visit belongs to a person when
its person_id equals the person's id. Visits for unknown persons are
ignored. Persons are printed in input order.

Examples:
  # Print the result as a single literal
  visitmerge persons.csv visits.csv

  # Write an indented JSON report to a file
  visitmerge -f json --pretty -o out/report.json persons.csv visits.csv

  # Read Windows-1250 encoded input and print a Markdown report
  visitmerge -e windows-1250 -f markdown persons.csv visits.csv

Configuration file (.visitmerge.yaml) example:
  format: json
  pretty: true
  encoding: utf-8`,
		Version:       getVersion(),
		Args:          exactFileArgs,
		RunE:          runMergeCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Output format: literal, json, markdown or csv")
	cmd.Flags().StringP("output", "o", "",
		"Write the result to specified file path (creates directories if needed)")
	cmd.Flags().StringP("encoding", "e", config.DefaultEncoding,
		"Character encoding of the input files (e.g. utf-8, windows-1250)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .visitmerge.yaml in current, XDG config or home directory)")
	cmd.Flags().BoolP("pretty", "p", false,
		"Indent json output")
	cmd.Flags().Bool("summaries-only", false,
		"Print only the person summaries in json output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &FlagError{Err: err}
	})

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// exactFileArgs accepts exactly the persons and visits file arguments.
func exactFileArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &ArgumentCountError{Got: len(args)}
	}
	return nil
}

// Execute runs the root command with the process arguments and returns
// the exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the root command and reports any error on stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(stderr, errorMessage(err))
		if isUsageError(err) {
			fmt.Fprintln(stderr, usageHint)
		}
	}
	return exitCode(err)
}
