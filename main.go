package main

import (
	"os"

	"github.com/tldr-pages/tldr-style-check/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
