// Package main provides the entry point for the visitmerge CLI.
//
// visitmerge joins a persons CSV (id,name,surname) with a visits CSV
// (id,person_id,site) and prints, for every person, how many visits
// reference them.
//
// Usage:
//
//	visitmerge persons.csv visits.csv
//	visitmerge --format json --output out/result.json persons.csv visits.csv
//
// See --help for all available options.
package main

import "os"

// main is the entry point for visitmerge.
func main() {
	os.Exit(Execute())
}
