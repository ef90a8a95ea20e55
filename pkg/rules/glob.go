package rules

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// MatchPath reports whether a resolved path matches a path pattern.
//
// An absolute pattern must match the whole path. A relative pattern with N
// segments is matched against the last N segments of the path, so "*.py"
// matches every Python file and "src/*.go" every Go file directly inside
// a directory named src. Wildcards never cross a separator: "**" is the
// same as "*", and braces are literal characters.
func MatchPath(pattern, path string) bool {
	pattern = plainGlob(filepath.ToSlash(pattern))
	path = filepath.ToSlash(path)

	if strings.HasPrefix(pattern, "/") {
		matched, err := doublestar.Match(pattern, path)
		return err == nil && matched
	}

	patternSegments := strings.Split(strings.TrimSuffix(pattern, "/"), "/")
	pathSegments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(patternSegments) > len(pathSegments) {
		return false
	}

	tail := strings.Join(pathSegments[len(pathSegments)-len(patternSegments):], "/")
	matched, err := doublestar.Match(strings.Join(patternSegments, "/"), tail)
	return err == nil && matched
}

var (
	starRun      = regexp.MustCompile(`\*{2,}`)
	braceEscaper = strings.NewReplacer("{", `\{`, "}", `\}`)
)

// plainGlob rewrites a filesystem glob into doublestar syntax without
// doublestar's extensions
func plainGlob(pattern string) string {
	return braceEscaper.Replace(starRun.ReplaceAllString(pattern, "*"))
}

// MatchMIME reports whether any of patterns matches mimeType. Unlike path
// patterns, "*" here also matches "/".
func MatchMIME(patterns []string, mimeType string) bool {
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		if g.Match(mimeType) {
			return true
		}
	}
	return false
}
