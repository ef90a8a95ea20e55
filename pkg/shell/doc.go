// Package shell turns a matched rule into a running process: Render fills
// in a command template and Runner hands the result to a shell.
package shell
