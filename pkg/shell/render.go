package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Placeholders substituted into a rule's command template
const (
	PlaceholderPath = "$PATH"
	PlaceholderArgs = "$ARGS"
)

// Render substitutes the shell-quoted args (space separated) for $ARGS and
// the shell-quoted path for $PATH. Both are replaced in one pass, so
// substituted text is never expanded again.
func Render(template, path string, args []string) string {
	r := strings.NewReplacer(
		PlaceholderArgs, shellquote.Join(args...),
		PlaceholderPath, shellquote.Join(path),
	)
	return r.Replace(template)
}
