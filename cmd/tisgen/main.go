// Package main is the entry point for the tisgen CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/tisgen/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
