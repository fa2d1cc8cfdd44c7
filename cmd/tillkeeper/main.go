package main

import (
	"os"

	"tillkeeper/cmd/tillkeeper/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
