package pipeline

import (
	"context"
	"log/slog"

	"github.com/shushuda/visitmerge/internal/merge"
	"github.com/shushuda/visitmerge/internal/model"
	"github.com/shushuda/visitmerge/internal/table"
)

// Run holds the inputs and intermediate results of one merge run.
// Steps read the fields earlier steps filled in.
type Run struct {
	// PersonsPath and VisitsPath are the input files.
	PersonsPath string
	VisitsPath  string

	// Encoding is the WHATWG label used to decode both inputs.
	Encoding string

	// Persons and Visits are set by the read steps.
	Persons *table.CSVSource
	Visits  *table.CSVSource

	// Result is set by the merge step.
	Result *merge.Result

	// Report is set by the merge step and rendered by the write step.
	Report *model.MergeReport

	// Performed lists the names of the steps that completed.
	Performed []string
}

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Do executes the step against the run.
	// A returned error stops the pipeline.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence.
// Cancellation is checked before each step. The first step error is
// returned as is, so callers can match it with errors.As.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Debug("step failed",
				"step", step.Name(),
				"error", err,
			)
			return err
		}

		run.Performed = append(run.Performed, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
