package main

import (
	"os"

	"dateplan-app/internal/app/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
