package rules

import (
	"cmp"
	"slices"

	"github.com/arthur-debert/see/pkg/logging"
	"github.com/arthur-debert/see/pkg/paths"
	"github.com/arthur-debert/see/pkg/types"
	"github.com/rs/zerolog"
)

// Matcher selects the rules that apply to a file for an action
type Matcher struct {
	logger zerolog.Logger
	mime   MIMEResolver
}

// Option configures a Matcher
type Option func(*Matcher)

// WithMIMEResolver replaces the extension based MIME lookup
func WithMIMEResolver(r MIMEResolver) Option {
	return func(m *Matcher) {
		m.mime = r
	}
}

// NewMatcher creates a new rule matcher
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		logger: logging.GetLogger("rules.matcher"),
		mime:   ExtensionResolver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the rules in rs whose path pattern, action and MIME
// patterns all accept path, highest priority first. Rules of equal
// priority keep their rule set order. An empty result means no match.
func (m *Matcher) Match(rs *types.RuleSet, path, action string) []types.Rule {
	resolved := paths.Resolve(path)
	mimeType := m.mime.TypeOf(resolved)

	m.logger.Debug().
		Str("path", path).
		Str("resolved", resolved).
		Str("mimeType", mimeType).
		Str("action", action).
		Msg("Matching rules")

	var matches []types.Rule
	for _, pattern := range rs.Patterns() {
		if !MatchPath(pattern, resolved) {
			continue
		}

		for _, rule := range rs.Rules(pattern) {
			if rule.Action != action {
				continue
			}
			if !MatchMIME(rule.MIMETypes, mimeType) {
				m.logger.Trace().
					Str("pattern", pattern).
					Strs("mimeTypes", rule.MIMETypes).
					Msg("Rule rejected by MIME filter")
				continue
			}
			matches = append(matches, rule)
		}
	}

	slices.SortStableFunc(matches, func(a, b types.Rule) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	m.logger.Debug().
		Int("matches", len(matches)).
		Msg("Matching complete")

	return matches
}
