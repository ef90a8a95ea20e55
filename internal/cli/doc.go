// Package cli wires the see command line: flag parsing, config lookup,
// rule matching and running the chosen command.
package cli
