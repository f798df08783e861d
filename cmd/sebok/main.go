package main

import (
	"os"

	"github.com/sebok-dev/sebok/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
