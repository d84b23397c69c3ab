package model

import (
	"time"

	"github.com/google/uuid"
)

// MergeStats describes the inputs consumed by one merge.
type MergeStats struct {
	// Persons is the number of person rows read.
	Persons int `json:"persons"`

	// Visits is the number of visit rows read.
	Visits int `json:"visits"`

	// MatchedVisits is the number of visits attributed to at least one person.
	MatchedVisits int `json:"matched_visits"`

	// UnmatchedVisits is the number of visits whose person_id matched no person.
	// These visits are ignored by the merge.
	UnmatchedVisits int `json:"unmatched_visits"`
}

// MergeReport is one merge run wrapped with metadata for output.
// Writers in the report package render it; the merge core never sees it.
type MergeReport struct {
	// RunID uniquely identifies this run in logs and JSON output.
	RunID string `json:"run_id"`

	// GeneratedAt is when the report was created.
	GeneratedAt time.Time `json:"generated_at"`

	// PersonsSource names the persons input (usually a file path).
	PersonsSource string `json:"persons_source,omitempty"`

	// VisitsSource names the visits input (usually a file path).
	VisitsSource string `json:"visits_source,omitempty"`

	// Stats holds row counts for both inputs.
	Stats MergeStats `json:"stats"`

	// Summaries is the merge output in input person order.
	Summaries []PersonSummary `json:"summaries"`
}

// NewMergeReport creates a report for the given summaries with a fresh run ID.
// A nil summaries slice is stored as empty so that JSON output is always a list.
func NewMergeReport(summaries []PersonSummary, stats MergeStats) *MergeReport {
	if summaries == nil {
		summaries = []PersonSummary{}
	}
	return &MergeReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Stats:       stats,
		Summaries:   summaries,
	}
}

// TotalVisits returns the sum of visits over all summaries.
// Duplicate person rows are each counted, so this can exceed Stats.MatchedVisits.
func (r *MergeReport) TotalVisits() int {
	total := 0
	for _, s := range r.Summaries {
		total += s.Visits
	}
	return total
}

// PersonsWithVisits returns the summaries that have at least one visit,
// preserving their order.
func (r *MergeReport) PersonsWithVisits() []PersonSummary {
	var out []PersonSummary
	for _, s := range r.Summaries {
		if s.Visits > 0 {
			out = append(out, s)
		}
	}
	return out
}

// HasVisits reports whether any person has at least one visit.
func (r *MergeReport) HasVisits() bool {
	for _, s := range r.Summaries {
		if s.Visits > 0 {
			return true
		}
	}
	return false
}
