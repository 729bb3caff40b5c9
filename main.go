package main

import (
	"os"

	"github.com/ashvale/pathbound/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
