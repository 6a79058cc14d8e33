// Package main is the entry point for the r4 CLI tool.
package main

import (
	"os"

	"github.com/radio4000/r4/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
