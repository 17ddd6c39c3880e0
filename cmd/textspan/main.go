// Package main is the entry point for the textspan command-line tool.
package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
