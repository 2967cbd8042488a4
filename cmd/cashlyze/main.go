package main

import (
	"os"

	"github.com/cashlyze/cashlyze/cmd/cashlyze/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
