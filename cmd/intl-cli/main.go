package main

import (
	"os"

	"github.com/goliatone/go-intl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
