package merge

import (
	"fmt"
	"slices"

	"github.com/shushuda/visitmerge/internal/model"
	"github.com/shushuda/visitmerge/internal/table"
)

// Source names used in SchemaError.
const (
	SourcePersons = "persons"
	SourceVisits  = "visits"
)

// Result is the output of MergeWithStats.
type Result struct {
	// Summaries holds one entry per person row, in input order.
	Summaries []model.PersonSummary

	// Stats describes the rows consumed.
	Stats model.MergeStats
}

// Merge returns, for every person row, the number of visit rows whose
// person_id equals the person's id. Output order follows persons input
// order and duplicate person rows produce duplicate summaries. Visits that
// reference no known person are ignored. A visit row too short to have a
// person_id cell matches nobody, not even a person whose id is empty.
func Merge(persons, visits table.Source) ([]model.PersonSummary, error) {
	res, err := MergeWithStats(persons, visits)
	if err != nil {
		return nil, err
	}
	return res.Summaries, nil
}

// MergeWithStats is Merge plus row statistics.
func MergeWithStats(persons, visits table.Source) (*Result, error) {
	if err := checkFields(SourcePersons, persons, model.PersonFields()); err != nil {
		return nil, err
	}
	if err := checkFields(SourceVisits, visits, model.VisitFields()); err != nil {
		return nil, err
	}

	personRows, err := table.Collect(persons)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SourcePersons, err)
	}
	visitRows, err := table.Collect(visits)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SourceVisits, err)
	}

	counts := make(map[string]int)
	for _, v := range visitRows {
		if personID, ok := v[model.ColumnPersonID]; ok {
			counts[personID]++
		}
	}

	known := make(map[string]bool, len(personRows))
	summaries := make([]model.PersonSummary, 0, len(personRows))
	for _, row := range personRows {
		p := toPerson(row)
		n := 0
		if id, ok := row[model.ColumnID]; ok {
			n = counts[id]
			known[id] = true
		}
		summaries = append(summaries, model.NewPersonSummary(p, n))
	}

	stats := model.MergeStats{
		Persons: len(personRows),
		Visits:  len(visitRows),
	}
	for _, v := range visitRows {
		if personID, ok := v[model.ColumnPersonID]; ok && known[personID] {
			stats.MatchedVisits++
		}
	}
	stats.UnmatchedVisits = stats.Visits - stats.MatchedVisits

	return &Result{Summaries: summaries, Stats: stats}, nil
}

// checkFields compares a source header against the required one.
func checkFields(name string, src table.Source, want []string) error {
	got := src.Fields()
	if !slices.Equal(got, want) {
		return &SchemaError{Source: name, Got: got, Want: want}
	}
	return nil
}

// toPerson converts a persons row into a record. Missing cells become empty strings.
func toPerson(row table.Row) model.PersonRecord {
	return model.PersonRecord{
		ID:      row[model.ColumnID],
		Name:    row[model.ColumnName],
		Surname: row[model.ColumnSurname],
	}
}
