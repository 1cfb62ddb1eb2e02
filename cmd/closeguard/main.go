// Package main provides the entry point for the closeguard overlay.
package main

import (
	"fmt"
	"os"

	"closeguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
