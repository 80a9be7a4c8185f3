package main

import (
	"os"

	"github.com/garagon/yacare/cmd/yacare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
