package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shushuda/visitmerge/internal/merge"
	"github.com/shushuda/visitmerge/internal/model"
	"github.com/shushuda/visitmerge/internal/report"
	"github.com/shushuda/visitmerge/internal/table"
)

// ErrMissingInput is returned when a step runs before the step that
// produces its input.
var ErrMissingInput = errors.New("pipeline step input not available")

// ReadStep loads one input file into the run.
type ReadStep struct {
	// side is merge.SourcePersons or merge.SourceVisits.
	side string
}

// NewReadPersonsStep creates a step that reads Run.PersonsPath.
func NewReadPersonsStep() *ReadStep {
	return &ReadStep{side: merge.SourcePersons}
}

// NewReadVisitsStep creates a step that reads Run.VisitsPath.
func NewReadVisitsStep() *ReadStep {
	return &ReadStep{side: merge.SourceVisits}
}

// Name returns the step name.
func (s *ReadStep) Name() string {
	return "read-" + s.side
}

// Do reads and decodes the file. A *table.FileAccessError is returned
// unwrapped.
func (s *ReadStep) Do(_ context.Context, run *Run) error {
	path := run.PersonsPath
	if s.side == merge.SourceVisits {
		path = run.VisitsPath
	}

	src, err := table.ReadFile(path, table.WithEncoding(run.Encoding))
	if err != nil {
		return err
	}

	if s.side == merge.SourceVisits {
		run.Visits = src
	} else {
		run.Persons = src
	}
	return nil
}

// MergeStep joins the two sources and builds the report.
type MergeStep struct {
	logger *slog.Logger
}

// NewMergeStep creates a MergeStep that logs through logger.
func NewMergeStep(logger *slog.Logger) *MergeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &MergeStep{logger: logger}
}

// Name returns the step name.
func (s *MergeStep) Name() string {
	return "merge"
}

// Do runs the merge. A *merge.SchemaError is returned unwrapped.
func (s *MergeStep) Do(_ context.Context, run *Run) error {
	if run.Persons == nil || run.Visits == nil {
		return fmt.Errorf("%w: merge needs both sources", ErrMissingInput)
	}

	result, err := merge.MergeWithStats(run.Persons, run.Visits)
	if err != nil {
		var schemaErr *merge.SchemaError
		if errors.As(err, &schemaErr) {
			s.logger.Debug("header check failed",
				"source", schemaErr.Source,
				"detail", schemaErr.Detail(),
			)
		}
		return err
	}

	run.Result = result
	run.Report = model.NewMergeReport(result.Summaries, result.Stats)
	run.Report.PersonsSource = run.Persons.Name()
	run.Report.VisitsSource = run.Visits.Name()

	for _, summary := range run.Report.Summaries {
		s.logger.Debug("person summary",
			"id", summary.ID,
			"name", summary.Name,
			"surname", summary.Surname,
			"visits", summary.Visits,
		)
	}
	s.logger.Info("merge complete",
		"run_id", run.Report.RunID,
		"persons", result.Stats.Persons,
		"visits", result.Stats.Visits,
		"matched", result.Stats.MatchedVisits,
		"unmatched", result.Stats.UnmatchedVisits,
	)
	return nil
}

// WriteStep renders the report to a file or to a fallback writer.
type WriteStep struct {
	format     report.Format
	options    report.Options
	outputFile string
	stdout     io.Writer

	// openOutput creates the output file; tests replace it.
	openOutput func(path string) (io.WriteCloser, error)
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithWriterOptions sets the report writer options.
func WithWriterOptions(opts report.Options) WriteStepOption {
	return func(s *WriteStep) {
		s.options = opts
	}
}

// WithOutputFile writes the report to path instead of stdout.
// Parent directories are created and the file mode is 0600.
func WithOutputFile(path string) WriteStepOption {
	return func(s *WriteStep) {
		s.outputFile = path
	}
}

// NewWriteStep creates a WriteStep for format that writes to stdout unless
// an output file is configured.
func NewWriteStep(format report.Format, stdout io.Writer, opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{
		format:     format,
		stdout:     stdout,
		openOutput: createOutputFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write-" + string(s.format)
}

// Do writes run.Report. The output file is only created once a report
// exists, so a failed merge never leaves an empty file behind. An error
// closing the file is returned like a write error.
func (s *WriteStep) Do(_ context.Context, run *Run) (err error) {
	if run.Report == nil {
		return fmt.Errorf("%w: no report to write", ErrMissingInput)
	}

	output := s.stdout
	if s.outputFile != "" {
		f, openErr := s.openOutput(s.outputFile)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}()
		output = f
	}

	writer, err := report.NewWriter(s.format, output, s.options)
	if err != nil {
		return err
	}

	if _, err := writer.Write(run.Report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// createOutputFile creates or truncates path, creating parent directories
// as needed. The file is readable by the owner only since it contains
// personal data.
func createOutputFile(path string) (io.WriteCloser, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// DefaultPipeline creates the standard read, read, merge, write pipeline.
func DefaultPipeline(write *WriteStep, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewReadPersonsStep(),
		NewReadVisitsStep(),
		NewMergeStep(p.logger),
		write,
	)
	return p
}
