package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// createTestSummaries returns the canonical two-person merge output.
func createTestSummaries() []PersonSummary {
	return []PersonSummary{
		{ID: "1", Name: "Adam", Surname: "Kowalski", Visits: 0},
		{ID: "2", Name: "Seth", Surname: "McFarlane", Visits: 2},
	}
}

// TestNewMergeReport tests report construction.
func TestNewMergeReport(t *testing.T) {
	t.Parallel()

	t.Run("assigns a UUID run id", func(t *testing.T) {
		t.Parallel()

		r := NewMergeReport(createTestSummaries(), MergeStats{Persons: 2, Visits: 2})
		if _, err := uuid.Parse(r.RunID); err != nil {
			t.Errorf("expected RunID to be a UUID, got %q: %v", r.RunID, err)
		}
	})

	t.Run("run ids are unique", func(t *testing.T) {
		t.Parallel()

		a := NewMergeReport(nil, MergeStats{})
		b := NewMergeReport(nil, MergeStats{})
		if a.RunID == b.RunID {
			t.Errorf("expected distinct run ids, both were %q", a.RunID)
		}
	})

	t.Run("sets generation time", func(t *testing.T) {
		t.Parallel()

		r := NewMergeReport(nil, MergeStats{})
		if r.GeneratedAt.IsZero() {
			t.Error("expected GeneratedAt to be set")
		}
	})

	t.Run("nil summaries become empty list", func(t *testing.T) {
		t.Parallel()

		r := NewMergeReport(nil, MergeStats{})
		if r.Summaries == nil {
			t.Fatal("expected non-nil Summaries")
		}

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(data), `"summaries":[]`) {
			t.Errorf("expected empty summaries list in JSON, got %s", data)
		}
	})
}

// TestMergeReportTotals tests the aggregate helpers.
func TestMergeReportTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		summaries     []PersonSummary
		wantTotal     int
		wantWith      int
		wantHasVisits bool
	}{
		{
			name:          "canonical input",
			summaries:     createTestSummaries(),
			wantTotal:     2,
			wantWith:      1,
			wantHasVisits: true,
		},
		{
			name:          "no summaries",
			summaries:     nil,
			wantTotal:     0,
			wantWith:      0,
			wantHasVisits: false,
		},
		{
			name: "nobody visited",
			summaries: []PersonSummary{
				{ID: "1", Name: "Adam", Surname: "Kowalski"},
				{ID: "2", Name: "Seth", Surname: "McFarlane"},
			},
			wantTotal:     0,
			wantWith:      0,
			wantHasVisits: false,
		},
		{
			name: "duplicate persons are counted twice",
			summaries: []PersonSummary{
				{ID: "1", Name: "Adam", Surname: "Kowalski", Visits: 3},
				{ID: "1", Name: "Adam", Surname: "Kowalski", Visits: 3},
			},
			wantTotal:     6,
			wantWith:      2,
			wantHasVisits: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewMergeReport(tt.summaries, MergeStats{})
			if got := r.TotalVisits(); got != tt.wantTotal {
				t.Errorf("TotalVisits() = %d, want %d", got, tt.wantTotal)
			}
			if got := len(r.PersonsWithVisits()); got != tt.wantWith {
				t.Errorf("len(PersonsWithVisits()) = %d, want %d", got, tt.wantWith)
			}
			if got := r.HasVisits(); got != tt.wantHasVisits {
				t.Errorf("HasVisits() = %v, want %v", got, tt.wantHasVisits)
			}
		})
	}
}

// TestPersonsWithVisitsOrder verifies input order is preserved.
func TestPersonsWithVisitsOrder(t *testing.T) {
	t.Parallel()

	r := NewMergeReport([]PersonSummary{
		{ID: "3", Visits: 1},
		{ID: "1", Visits: 0},
		{ID: "2", Visits: 5},
	}, MergeStats{})

	got := r.PersonsWithVisits()
	if len(got) != 2 || got[0].ID != "3" || got[1].ID != "2" {
		t.Errorf("expected ids [3 2], got %+v", got)
	}
}
