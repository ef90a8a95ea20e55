package cli

// Short messages (one-liners)
const (
	MsgRootUse   = "see [flags] [ACTION] PATH [ARGS...]"
	MsgRootShort = "Open files in the terminal"
	MsgRootLong  = `see picks a command for a file from the rules in its configuration file
and runs it. A rule matches when its path pattern, action and MIME type
patterns all accept the file; the highest priority match wins.

When the first argument contains no "." and more arguments follow, it is
taken as the action (default "view"). Arguments after PATH are passed to
the command through $ARGS.`
	MsgRootExample = `  see notes.md              # view notes.md
  see edit main.go +42      # run the "edit" rule with $ARGS = +42
  see -n report.pdf         # print the command instead of running it
  see --all data.json       # list every matching command`

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Location of configuration file (default $SEE_CONFIG or ~/.see.toml)"
	MsgFlagNoRun         = "Display command but don't run it"
	MsgFlagAll           = "Display every matching command in priority order"
	MsgFlagAction        = "Action to perform, skipping action detection"
	MsgFlagExampleConfig = "Print an example configuration file"

	// Error messages
	MsgErrMissingPath = "missing PATH argument"
	MsgErrNoMatch     = "no matching pattern in `%s`"
	MsgErrorFormat    = "Error: %v"
	MsgExitStatus     = "command exited with status %d"
)
