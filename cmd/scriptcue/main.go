package main

import (
	"os"

	"github.com/scriptcue/scriptcue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
