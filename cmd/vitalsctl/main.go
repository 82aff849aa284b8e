package main

import (
	"os"

	"github.com/blaisecz/vitals-tracker/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
