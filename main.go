// Package main is the entry point for the reqtrace CLI.
package main

import "reqtrace.dev/pkg/reqtrace/cmd"

func main() {
	cmd.Execute()
}
