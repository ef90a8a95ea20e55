package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPath(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.py", "/home/u/a.py", true},
		{"*.py", "/home/u/a.pyc", false},
		{"*.py", "/home/u/py", false},
		{"a.py", "/home/u/a.py", true},
		{"?.py", "/home/u/a.py", true},
		{"?.py", "/home/u/ab.py", false},
		{"[ab].py", "/home/u/b.py", true},
		{"[ab].py", "/home/u/c.py", false},
		{"[!ab].py", "/home/u/c.py", true},
		{"u/*.py", "/home/u/a.py", true},
		{"u/*.py", "/home/v/a.py", false},
		{"*/*.py", "/home/u/a.py", true},
		{"*", "/home/u/Makefile", true},
		{"*.py", "/home/u/src/a.py", true},
		{"home/*.py", "/home/u/a.py", false},
		{"a/b/c/d/e.py", "/b/c/d/e.py", false},
		{"/home/u/*.py", "/home/u/a.py", true},
		{"/home/*.py", "/home/u/a.py", false},
		{"/*.py", "/home/u/a.py", false},
		{"*.PY", "/home/u/a.py", false},
		{"[a.py", "/home/u/a.py", false},
		{"*.{md,txt}", "/x/a.md", false},
		{"*.{md,txt}", "/x/a.{md,txt}", true},
		{"**.py", "/home/u/a.py", true},
		{"**/*.py", "/home/u/a.py", true},
		{"**/*.py", "/a.py", false},
		{"/home/**", "/home/u/a.py", false},
		{"/home/**", "/home/u", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPath(tt.pattern, tt.path))
		})
	}
}

func TestMatchMIME(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		mimeType string
		want     bool
	}{
		{"star matches everything", []string{"*"}, "text/plain", true},
		{"star matches unknown", []string{"*"}, UnknownMIMEType, true},
		{"family glob", []string{"text/*"}, "text/markdown", true},
		{"family glob rejects other family", []string{"text/*"}, "image/png", false},
		{"family glob rejects unknown", []string{"text/*"}, UnknownMIMEType, false},
		{"exact", []string{"application/pdf"}, "application/pdf", true},
		{"any of several", []string{"image/*", "application/pdf"}, "application/pdf", true},
		{"question mark", []string{"image/?ng"}, "image/png", true},
		{"class", []string{"image/[jp]*"}, "image/jpeg", true},
		{"suffix across slash", []string{"*json"}, "application/json", true},
		{"no patterns", nil, "text/plain", false},
		{"invalid pattern ignored", []string{"text/[plain", "*"}, "text/plain", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchMIME(tt.patterns, tt.mimeType))
		})
	}
}
