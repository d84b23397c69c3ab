// Package merge joins a persons source with a visits source and counts,
// for every person, the visits that reference it.
//
// Both sources must expose exact headers: persons [id name surname] and
// visits [id person_id site]. When either header differs, Merge returns a
// *SchemaError before reading any row, and no partial output is produced.
//
// Merge is pure. It keeps no state between calls and never terminates the
// process; callers decide what a failure means.
package merge
