package types

// DefaultAction is the action used when none is requested or configured
const DefaultAction = "view"

// DefaultPriority is the priority of a rule that does not set one
const DefaultPriority = 1

// AnyMIMEType is the MIME pattern list a rule gets when it does not set one
var AnyMIMEType = []string{"*"}

// Rule binds an action on files matching a path pattern to a command template
type Rule struct {
	// Pattern is the path glob the rule was configured under
	Pattern string

	// Action is the verb selecting this rule, e.g. "view" or "edit"
	Action string

	// Run is the command template; $PATH and $ARGS are substituted
	Run string

	// Priority orders matching rules (higher first)
	Priority int

	// MIMETypes are globs over the guessed MIME type; one must match
	MIMETypes []string
}

// RuleSet groups rules by path pattern, remembering the order in which
// patterns were first added
type RuleSet struct {
	patterns []string
	rules    map[string][]Rule
}

// NewRuleSet creates an empty rule set
func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string][]Rule)}
}

// Add appends a rule under pattern. Only loaders call this, before the
// rule set is handed out.
func (rs *RuleSet) Add(pattern string, rule Rule) {
	if rs.rules == nil {
		rs.rules = make(map[string][]Rule)
	}
	if _, ok := rs.rules[pattern]; !ok {
		rs.patterns = append(rs.patterns, pattern)
	}
	rule.Pattern = pattern
	rs.rules[pattern] = append(rs.rules[pattern], rule)
}

// Patterns returns the path patterns in iteration order
func (rs *RuleSet) Patterns() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.patterns))
	copy(out, rs.patterns)
	return out
}

// Rules returns a copy of the rules configured under pattern
func (rs *RuleSet) Rules(pattern string) []Rule {
	if rs == nil {
		return nil
	}
	src := rs.rules[pattern]
	out := make([]Rule, len(src))
	copy(out, src)
	return out
}

// Len returns the total number of rules
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	n := 0
	for _, rules := range rs.rules {
		n += len(rules)
	}
	return n
}

// All returns every rule in iteration order
func (rs *RuleSet) All() []Rule {
	var out []Rule
	for _, pattern := range rs.Patterns() {
		out = append(out, rs.rules[pattern]...)
	}
	return out
}
