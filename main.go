package main

import (
	"os"

	"github.com/classpulse/classpulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
