// Package rules selects the configured commands that apply to a file.
//
// A rule applies when all three filters accept the file:
//
//   - the path pattern matches the resolved path (see MatchPath)
//   - the rule's action equals the requested action
//   - one of the rule's MIME patterns matches the guessed MIME type
//
// # Rule Priority
//
// Matching rules are returned highest priority first. The sort is stable,
// so rules of equal priority come back in rule set order. Callers normally
// run the first one.
//
// # MIME Types
//
// MIME types are guessed from the file extension. An unrecognised
// extension yields UnknownMIMEType, the empty string, which the default
// pattern "*" matches and narrower patterns such as "text/*" do not.
package rules
