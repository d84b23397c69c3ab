package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, run *Run) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, run *Run) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, run)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// discardLogger returns a logger that drops everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("applies WithLogger option", func(t *testing.T) {
		t.Parallel()

		logger := discardLogger()
		p := New(WithLogger(logger))

		if p.logger != logger {
			t.Error("expected custom logger")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "first"}, &mockStep{name: "second"}, &mockStep{name: "third"})

		names := p.StepNames()
		expected := []string{"first", "second", "third"}
		if len(names) != len(expected) {
			t.Fatalf("expected %d names, got %d", len(expected), len(names))
		}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *Run) error {
					order = append(order, name)
					return nil
				},
			}
		}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(record("step-1"), record("step-2"))

		run := &Run{}
		if err := p.Execute(context.Background(), run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(order) != 2 || order[0] != "step-1" || order[1] != "step-2" {
			t.Errorf("unexpected execution order: %v", order)
		}
		if len(run.Performed) != 2 {
			t.Errorf("expected 2 performed steps, got %v", run.Performed)
		}
	})

	t.Run("stops at first error and returns it unchanged", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("step failed")
		failing := &mockStep{
			name: "failing",
			doFunc: func(_ context.Context, _ *Run) error {
				return stepErr
			},
		}
		after := &mockStep{name: "after"}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(&mockStep{name: "before"}, failing, after)

		run := &Run{}
		err := p.Execute(context.Background(), run)

		if !errors.Is(err, stepErr) || err.Error() != stepErr.Error() {
			t.Errorf("expected the step error unchanged, got %v", err)
		}
		if after.callCount != 0 {
			t.Error("expected later steps to be skipped")
		}
		if len(run.Performed) != 1 || run.Performed[0] != "before" {
			t.Errorf("expected only 'before' to be performed, got %v", run.Performed)
		}
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never"}
		p := New(WithLogger(discardLogger()))
		p.AddStep(step)

		err := p.Execute(ctx, &Run{})

		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Error("expected step not to run")
		}
	})

	t.Run("cancellation between steps", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		first := &mockStep{
			name: "first",
			doFunc: func(_ context.Context, _ *Run) error {
				cancel()
				return nil
			},
		}
		second := &mockStep{name: "second"}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(first, second)

		if err := p.Execute(ctx, &Run{}); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if second.callCount != 0 {
			t.Error("expected second step not to run")
		}
	})

	t.Run("empty pipeline succeeds", func(t *testing.T) {
		t.Parallel()

		if err := New().Execute(context.Background(), &Run{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
