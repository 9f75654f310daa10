package main

import (
	"os"

	"github.com/ParrotsDL/CLUE/cmd/clue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
