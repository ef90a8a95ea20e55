// Package paths provides path handling for see.
//
// It covers three concerns:
//
//   - Locating the configuration file (SEE_CONFIG, ~/.see.toml, XDG config)
//   - Home directory expansion for user supplied paths
//   - Canonicalizing a file path before it is matched against rules
//
// # Environment Variables
//
//   - SEE_CONFIG: Path to the configuration file (default: ~/.see.toml)
//   - XDG_CONFIG_HOME: Secondary location, $XDG_CONFIG_HOME/see/config.toml
package paths
