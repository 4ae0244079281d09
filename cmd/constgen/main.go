// Package main provides the constgen command.
package main

import (
	"os"

	"github.com/leapstack-labs/constgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
