package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/see/internal/cli"
	"github.com/arthur-debert/see/internal/version"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

func newGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:           "see-gen",
		Short:         "Generate completion scripts and the man page for see",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	genCmd.AddCommand(newCompletionCmd(), newManCmd())
	return genCmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion SHELL",
		Short:     "Write the completion script for SHELL to stdout",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.OutOrStdout(), args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	var outDir string

	manCmd := &cobra.Command{
		Use:   "man",
		Short: "Write the see(1) man page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return writeMan(cmd.OutOrStdout())
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", outDir, err)
			}
			f, err := os.Create(filepath.Join(outDir, "see.1"))
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			return writeMan(f)
		},
	}

	manCmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory to write see.1 into (default stdout)")
	return manCmd
}

func writeCompletion(w io.Writer, shell string) error {
	rootCmd := cli.NewRootCmd()

	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unknown shell %q (supported: %v)", shell, shells)
	}
}

func writeMan(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "SEE",
		Section: "1",
		Source:  "see " + version.Version,
		Manual:  "see manual",
	}
	return doc.GenMan(cli.NewRootCmd(), header, w)
}
