package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/shushuda/visitmerge/internal/config"
	"github.com/shushuda/visitmerge/internal/merge"
	"github.com/shushuda/visitmerge/internal/table"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "argument count", err: &ArgumentCountError{Got: 1}, want: ExitUsage},
		{name: "flag error", err: &FlagError{Err: errors.New("unknown flag: --bogus")}, want: ExitUsage},
		{name: "schema error", err: &merge.SchemaError{Source: merge.SourcePersons}, want: ExitFailure},
		{name: "file error", err: &table.FileAccessError{Path: "x.csv", Err: fs.ErrNotExist}, want: ExitFailure},
		{name: "config error", err: fmt.Errorf("configuration error: %w", config.ErrInvalidFormat), want: ExitFailure},
		{name: "other error", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("schema error is verbatim even when wrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("merge failed: %w", &merge.SchemaError{Source: merge.SourceVisits})
		if got := errorMessage(err); got != merge.SchemaErrorMessage {
			t.Errorf("got %q, want %q", got, merge.SchemaErrorMessage)
		}
	})

	t.Run("file error keeps its hint", func(t *testing.T) {
		t.Parallel()
		fileErr := &table.FileAccessError{Path: "x.csv", Err: errors.New("open x.csv: no such file or directory")}
		if got := errorMessage(fileErr); got != fileErr.Error() {
			t.Errorf("got %q, want %q", got, fileErr.Error())
		}
	})

	t.Run("other errors use their message", func(t *testing.T) {
		t.Parallel()
		if got := errorMessage(errors.New("boom")); got != "boom" {
			t.Errorf("got %q, want %q", got, "boom")
		}
	})
}
