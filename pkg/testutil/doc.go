// Package testutil provides file system helpers for testing see components.
//
// Tests use real temp directories (t.TempDir) since path resolution and
// config loading both read the file system.
package testutil
