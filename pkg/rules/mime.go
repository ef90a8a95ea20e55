package rules

import (
	"mime"
	"path/filepath"
)

// UnknownMIMEType is the MIME type of a file whose extension is not
// recognised. The pattern "*" matches it, "text/*" does not.
const UnknownMIMEType = ""

// MIMEResolver guesses the MIME type of a path
type MIMEResolver interface {
	TypeOf(path string) string
}

// MIMEResolverFunc adapts a function to MIMEResolver
type MIMEResolverFunc func(path string) string

// TypeOf implements MIMEResolver
func (f MIMEResolverFunc) TypeOf(path string) string {
	return f(path)
}

// ExtensionResolver looks the type up from the file extension using the
// mime package's table, which includes the system mime.types files.
// Parameters such as charset are dropped.
type ExtensionResolver struct{}

// TypeOf implements MIMEResolver
func (ExtensionResolver) TypeOf(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return UnknownMIMEType
	}

	full := mime.TypeByExtension(ext)
	if full == "" {
		return UnknownMIMEType
	}

	mediaType, _, err := mime.ParseMediaType(full)
	if err != nil {
		return full
	}
	return mediaType
}
