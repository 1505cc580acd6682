// Package main is the entry point for the aksara CLI.
package main

import (
	"os"

	"github.com/hanacaraka/aksara/cmd/aksara/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
