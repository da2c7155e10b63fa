// Package main is the entry point for the unichar CLI.
package main

import (
	"os"

	"github.com/f3rmion/unichar/cmd/unichar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
