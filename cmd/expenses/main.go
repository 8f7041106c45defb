// Package main is the entry point for the expenses CLI.
package main

import (
	"os"

	"expenses/cmd/expenses/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
