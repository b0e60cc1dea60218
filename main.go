package main

import (
	"os"

	"github.com/ananya/practiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
