package main

import (
	"os"

	"github.com/SwagCode4U/projectmaker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
