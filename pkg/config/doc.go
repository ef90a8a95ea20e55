// Package config loads see's configuration file into a validated rule set.
//
// The document maps actions and path patterns to command entries:
//
//	[[actions.view."*.md"]]
//	run = "glow $PATH"
//	priority = 10
//	mime_types = ["text/*"]
//
// Every field is checked while loading; a value of the wrong type is a
// CONFIG_INVALID error rather than a surprise at match time. Entries
// without a run command are skipped. TOML is the default syntax, YAML is
// accepted for .yaml and .yml files.
package config
