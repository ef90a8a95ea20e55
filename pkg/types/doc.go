// Package types defines the data model shared by the config loader and the
// rule matcher: Rule, one configured command binding, and RuleSet, the rules
// grouped by path pattern.
package types
