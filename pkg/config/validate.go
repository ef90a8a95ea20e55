package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/arthur-debert/see/pkg/errors"
	"github.com/arthur-debert/see/pkg/logging"
	"github.com/arthur-debert/see/pkg/types"
)

// Top-level tables of a config document
const (
	keyActions  = "actions"
	keySettings = "settings"
)

// Entry keys understood inside actions.<action>.<pattern>
const (
	keyRun       = "run"
	keyPriority  = "priority"
	keyMIMETypes = "mime_types"
)

// buildRuleSet walks actions.<action>.<pattern> = [entry, ...] and turns
// every entry with a non-empty run into a Rule. Actions, the patterns under
// each action and the entries under each pattern are visited in the order
// given by order.
func buildRuleSet(raw map[string]interface{}, order *keyOrder) (*types.RuleSet, error) {
	logger := logging.GetLogger("config.validate")
	rs := types.NewRuleSet()

	actionsVal, ok := raw[keyActions]
	if !ok {
		logger.Debug().Msg("No actions table in config")
		return rs, nil
	}

	actions, err := asTable(actionsVal)
	if err != nil {
		if key, bad := err.(nonStringKey); bad {
			return nil, invalidf("action", "[[actions.%v]] 'action' expected string, found %s",
				key.key, describe(key.key))
		}
		return nil, invalidf("actions", "'actions' expected table, found %s", describe(actionsVal))
	}

	for _, action := range order.actionsOf(actions) {
		if action == "" {
			return nil, invalidf("action", "[[actions.\"\"]] 'action' expected non-empty string")
		}

		patterns, err := asTable(actions[action])
		if err != nil {
			return nil, invalidf("actions", "[[actions.%s]] expected table of path patterns, found %s",
				action, describe(actions[action])).WithDetail("action", action)
		}

		for _, pattern := range order.patternsOf(action, patterns) {
			loc := location(action, pattern)
			if reason := checkPathPattern(pattern); reason != "" {
				return nil, invalidf("pattern", "%s invalid path pattern %q: %s", loc, pattern, reason).
					WithDetail("action", action).
					WithDetail("pattern", pattern)
			}

			entries, err := asEntries(patterns[pattern])
			if err != nil {
				return nil, invalidf("pattern", "%s expected list of tables, found %s",
					loc, describe(patterns[pattern])).
					WithDetail("action", action).
					WithDetail("pattern", pattern)
			}

			for i, entry := range entries {
				rule, keep, err := buildRule(action, pattern, entry)
				if err != nil {
					return nil, err.
						WithDetail("action", action).
						WithDetail("pattern", pattern).
						WithDetail("index", i)
				}
				if !keep {
					logger.Debug().
						Str("action", action).
						Str("pattern", pattern).
						Int("index", i).
						Msg("Skipping entry with empty run")
					continue
				}
				rs.Add(pattern, rule)
			}
		}
	}

	return rs, nil
}

// buildRule validates one entry. keep is false for entries without a
// command, which are dropped without error.
func buildRule(action, pattern string, entry map[string]interface{}) (types.Rule, bool, *errors.SeeError) {
	loc := location(action, pattern)

	run := ""
	if v, ok := entry[keyRun]; ok {
		s, isString := v.(string)
		if !isString {
			return types.Rule{}, false, invalidf(keyRun, "%s 'run' expected string, found %s", loc, describe(v))
		}
		run = s
	}
	if run == "" {
		return types.Rule{}, false, nil
	}

	priority := types.DefaultPriority
	if v, ok := entry[keyPriority]; ok {
		p, isInt := asInt(v)
		if !isInt {
			return types.Rule{}, false, invalidf(keyPriority, "%s 'priority' expected int, found %s", loc, describe(v))
		}
		priority = p
	}

	mimeTypes := append([]string(nil), types.AnyMIMEType...)
	if v, ok := entry[keyMIMETypes]; ok {
		list, isList := asStrings(v)
		if !isList {
			return types.Rule{}, false, invalidf(keyMIMETypes,
				"%s 'mime_types' expected list of strings, found %s", loc, describe(v))
		}
		if len(list) == 0 {
			return types.Rule{}, false, invalidf(keyMIMETypes, "%s 'mime_types' must not be empty", loc)
		}
		for _, p := range list {
			if _, err := glob.Compile(p); err != nil {
				return types.Rule{}, false, invalidf(keyMIMETypes, "%s invalid MIME pattern %q: %v", loc, p, err)
			}
		}
		mimeTypes = list
	}

	return types.Rule{
		Action:    action,
		Run:       run,
		Priority:  priority,
		MIMETypes: mimeTypes,
	}, true, nil
}

// checkPathPattern returns why pattern is not a plain filesystem glob, or
// "" when it is. Brace alternation and ** are not part of that syntax.
func checkPathPattern(pattern string) string {
	switch {
	case pattern == "":
		return "empty pattern"
	case strings.ContainsAny(pattern, "{}"):
		return "brace alternation is not supported"
	case strings.Contains(pattern, "**"):
		return "** is not supported, use * per path segment"
	case !doublestar.ValidatePattern(pattern):
		return "malformed glob"
	}
	return ""
}

type nonStringKey struct{ key interface{} }

func (e nonStringKey) Error() string { return fmt.Sprintf("non-string key %v", e.key) }

type notTable struct{}

func (notTable) Error() string { return "not a table" }

// asTable accepts the map shapes produced by the TOML and YAML decoders
func asTable(v interface{}) (map[string]interface{}, error) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			s, ok := k.(string)
			if !ok {
				return nil, nonStringKey{key: k}
			}
			out[s] = val
		}
		return out, nil
	default:
		return nil, notTable{}
	}
}

// asEntries accepts an array of tables or, for [actions.x."p"] written as a
// plain table, a single table
func asEntries(v interface{}) ([]map[string]interface{}, error) {
	switch t := v.(type) {
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(t))
		for _, item := range t {
			table, err := asTable(item)
			if err != nil {
				return nil, err
			}
			out = append(out, table)
		}
		return out, nil
	case []map[string]interface{}:
		return t, nil
	default:
		table, err := asTable(v)
		if err != nil {
			return nil, err
		}
		return []map[string]interface{}{table}, nil
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asStrings(v interface{}) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func location(action, pattern string) string {
	return fmt.Sprintf("[[actions.%s.%s]]", action, quote(pattern))
}

// describe renders a bad value the way it appears in error messages
func describe(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "nothing"
	case string:
		return quote(t)
	default:
		return fmt.Sprintf("%v (%T)", t, t)
	}
}

func quote(s string) string {
	return strconv.Quote(s)
}

func invalidf(field, format string, args ...interface{}) *errors.SeeError {
	return errors.Newf(errors.ErrConfigValid, format, args...).WithDetail("field", field)
}
