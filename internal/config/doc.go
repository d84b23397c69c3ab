// Package config provides configuration structures and utilities for visitmerge.
// It defines the run options (input paths, output format and destination,
// input encoding, logging) and loads optional defaults from a YAML file.
package config
