package main

import (
	"os"

	"github.com/jobtrack-dev/jobtrack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
