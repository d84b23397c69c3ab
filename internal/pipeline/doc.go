// Package pipeline runs one visit merge as a sequence of named steps.
//
// A run reads the persons file, reads the visits file, merges them and
// writes the report. Each stage is a Step that receives the shared Run
// state. The pipeline logs every step, checks the context between steps
// and stops at the first failure, returning that step's error unchanged.
package pipeline
