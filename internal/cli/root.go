package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/see/internal/version"
	"github.com/arthur-debert/see/pkg/config"
	"github.com/arthur-debert/see/pkg/errors"
	"github.com/arthur-debert/see/pkg/logging"
	"github.com/arthur-debert/see/pkg/paths"
	"github.com/arthur-debert/see/pkg/rules"
	"github.com/arthur-debert/see/pkg/shell"
	"github.com/arthur-debert/see/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries the exit status of an executed command so main can
// exit with it
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(MsgExitStatus, e.Code)
}

type options struct {
	verbosity     int
	configPath    string
	noRun         bool
	all           bool
	action        string
	exampleConfig bool
}

// invocation is the action, path and forwarded arguments of one run
type invocation struct {
	Action string
	Path   string
	Args   []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	// Everything after PATH belongs to the command being run
	flags.SetInterspersed(false)
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	flags.BoolVarP(&opts.noRun, "no-run", "n", false, MsgFlagNoRun)
	flags.BoolVarP(&opts.all, "all", "a", false, MsgFlagAll)
	flags.StringVar(&opts.action, "action", "", MsgFlagAction)
	flags.BoolVar(&opts.exampleConfig, "example-config", false, MsgFlagExampleConfig)

	rootCmd.SetVersionTemplate(fmt.Sprintf("see version %s\n  commit: %s\n  built:  %s\n",
		version.Version, version.Commit, version.Date))

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	out := cmd.OutOrStdout()

	if opts.exampleConfig {
		_, err := fmt.Fprint(out, config.ExampleConfig())
		return err
	}

	inv, err := parseInvocation(args, opts.action)
	if err != nil {
		return err
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = paths.ConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	matches := rules.NewMatcher().Match(cfg.Rules, inv.Path, inv.Action)
	if len(matches) == 0 {
		return errors.Newf(errors.ErrNoMatch, MsgErrNoMatch, configPath).
			WithDetail("path", inv.Path).
			WithDetail("action", inv.Action)
	}

	if opts.all {
		for _, rule := range matches {
			if _, err := fmt.Fprintln(out, shell.Render(rule.Run, inv.Path, inv.Args)); err != nil {
				return err
			}
		}
		return nil
	}

	command := shell.Render(matches[0].Run, inv.Path, inv.Args)
	log.Info().
		Str("pattern", matches[0].Pattern).
		Int("priority", matches[0].Priority).
		Str("command", command).
		Msg("Selected command")

	if opts.noRun {
		_, err := fmt.Fprintln(out, command)
		return err
	}

	runner := &shell.Runner{
		Shell:  cfg.Shell,
		Stdin:  cmd.InOrStdin(),
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	}
	code, err := runner.Run(cmd.Context(), command)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// parseInvocation splits [ACTION] PATH [ARGS...]. Without an explicit
// action, the first argument is the action when it has no "." and more
// arguments follow it.
func parseInvocation(args []string, action string) (invocation, error) {
	if len(args) == 0 {
		return invocation{}, errors.New(errors.ErrInvalidInput, MsgErrMissingPath)
	}

	if action != "" {
		return invocation{Action: action, Path: args[0], Args: args[1:]}, nil
	}

	if !strings.Contains(args[0], ".") && len(args) > 1 {
		return invocation{Action: args[0], Path: args[1], Args: args[2:]}, nil
	}

	return invocation{Action: types.DefaultAction, Path: args[0], Args: args[1:]}, nil
}
