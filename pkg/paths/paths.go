package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// EnvConfig names the environment variable holding the config path
	EnvConfig = "SEE_CONFIG"

	// EnvHome is the fallback for locating the home directory
	EnvHome = "HOME"

	// DefaultConfigPath is used when EnvConfig is unset
	DefaultConfigPath = "~/.see.toml"

	// AppDirName is the directory under XDG_CONFIG_HOME holding config.toml
	AppDirName = "see"
)

// ConfigPath returns the configuration file path to load.
//
// Resolution order: $SEE_CONFIG, ~/.see.toml, then
// $XDG_CONFIG_HOME/see/config.toml if it exists. When nothing exists the
// home-relative default is returned so the loader can report it missing.
// The returned path is not home-expanded.
func ConfigPath() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}

	if fileExists(ExpandHome(DefaultConfigPath)) {
		return DefaultConfigPath
	}

	xdgPath := filepath.Join(xdg.ConfigHome, AppDirName, "config.toml")
	if fileExists(xdgPath) {
		return xdgPath
	}

	return DefaultConfigPath
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not supported
	return path
}

// Resolve returns the canonical absolute form of path: relative segments
// removed and symlinks evaluated. Missing trailing components are kept
// as given, after resolving the longest existing prefix.
func Resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}

	// Walk up to the deepest existing ancestor
	dir, rest := abs, ""
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(resolved, rest)
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
