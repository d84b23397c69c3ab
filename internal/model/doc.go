// Package model defines the data structures shared across visitmerge.
//
// This package contains the following main types:
//   - PersonRecord: A row of the persons input (id, name, surname)
//   - VisitRecord: A row of the visits input (id, person_id, site)
//   - PersonSummary: A person together with the number of visits referencing it
//   - MergeReport: One merge run wrapped with metadata for output
//
// The models live in their own package so that the merge core, the report
// writers and the command layer can share them without import cycles.
// All of them are serializable to JSON.
package model
