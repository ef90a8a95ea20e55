package main

import (
	"errors"
	"os"

	"github.com/arthur-debert/see/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The command ran; its status is ours
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		cli.PrintError(os.Stderr, err, isatty.IsTerminal(os.Stderr.Fd()))
		os.Exit(1)
	}
}
