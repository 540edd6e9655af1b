package main

import (
	"os"

	"github.com/aidanlsb/teachmate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
