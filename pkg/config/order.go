package config

import (
	"sort"

	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

// keyOrder records the order in which action names, and the path patterns
// under each action, first appear in a config document. Decoded maps lose
// that order; rule ties are broken by it.
type keyOrder struct {
	actions     []string
	patterns    map[string][]string
	seenAction  map[string]bool
	seenPattern map[[2]string]bool
}

func newKeyOrder() *keyOrder {
	return &keyOrder{
		patterns:    make(map[string][]string),
		seenAction:  make(map[string]bool),
		seenPattern: make(map[[2]string]bool),
	}
}

// record notes the action and pattern named by a full key path such as
// actions.view."*.py". Shorter or unrelated paths are ignored.
func (o *keyOrder) record(key []string) {
	if len(key) < 2 || key[0] != keyActions {
		return
	}

	action := key[1]
	if !o.seenAction[action] {
		o.seenAction[action] = true
		o.actions = append(o.actions, action)
	}

	if len(key) < 3 {
		return
	}
	pattern := key[2]
	if !o.seenPattern[[2]string{action, pattern}] {
		o.seenPattern[[2]string{action, pattern}] = true
		o.patterns[action] = append(o.patterns[action], pattern)
	}
}

// actionsOf returns the keys of actions in document order
func (o *keyOrder) actionsOf(actions map[string]interface{}) []string {
	return inOrder(o.actions, actions)
}

// patternsOf returns the keys of an action's pattern table in document order
func (o *keyOrder) patternsOf(action string, patterns map[string]interface{}) []string {
	return inOrder(o.patterns[action], patterns)
}

// inOrder lists the keys of m in the recorded order. Keys the document
// scan did not see are appended sorted.
func inOrder(recorded []string, m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	listed := make(map[string]bool, len(recorded))
	for _, k := range recorded {
		if _, ok := m[k]; ok && !listed[k] {
			listed[k] = true
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range m {
		if !listed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// documentOrder scans data for the order of action and pattern keys. The
// document has already been decoded, so scan errors only shorten the
// result.
func documentOrder(format Format, data []byte) *keyOrder {
	switch format {
	case FormatYAML:
		return yamlKeyOrder(data)
	default:
		return tomlKeyOrder(data)
	}
}

func tomlKeyOrder(data []byte) *keyOrder {
	order := newKeyOrder()

	p := unstable.Parser{}
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = tomlKey(expr)
			order.record(table)
		case unstable.KeyValue:
			recordTOMLKeyValue(order, table, expr)
		}
	}

	return order
}

// recordTOMLKeyValue records a key/value under prefix, descending into
// inline tables so `view = { "*.py" = [...] }` is seen too
func recordTOMLKeyValue(order *keyOrder, prefix []string, kv *unstable.Node) {
	key := append(append([]string(nil), prefix...), tomlKey(kv)...)
	order.record(key)

	value := kv.Value()
	if value == nil || value.Kind != unstable.InlineTable {
		return
	}
	it := value.Children()
	for it.Next() {
		if child := it.Node(); child.Kind == unstable.KeyValue {
			recordTOMLKeyValue(order, key, child)
		}
	}
}

func tomlKey(n *unstable.Node) []string {
	var parts []string
	it := n.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func yamlKeyOrder(data []byte) *keyOrder {
	order := newKeyOrder()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return order
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	actions := yamlMappingValue(root, keyActions)
	if actions == nil {
		return order
	}
	for i := 0; i+1 < len(actions.Content); i += 2 {
		action := actions.Content[i].Value
		order.record([]string{keyActions, action})

		patterns := yamlResolve(actions.Content[i+1])
		if patterns.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(patterns.Content); j += 2 {
			order.record([]string{keyActions, action, patterns.Content[j].Value})
		}
	}

	return order
}

// yamlMappingValue returns the mapping stored under key in node, or nil
func yamlMappingValue(node *yaml.Node, key string) *yaml.Node {
	node = yamlResolve(node)
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != key {
			continue
		}
		if value := yamlResolve(node.Content[i+1]); value.Kind == yaml.MappingNode {
			return value
		}
		return nil
	}
	return nil
}

func yamlResolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
