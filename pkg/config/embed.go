package config

import (
	_ "embed"
)

//go:embed embedded/example.toml
var exampleConfig []byte

// ExampleConfig returns a commented example configuration file
func ExampleConfig() string {
	return string(exampleConfig)
}
