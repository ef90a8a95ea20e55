// Command see-gen writes shell completion scripts and the man page for see.
// Release packaging runs it; it is not installed alongside see.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newGenCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
