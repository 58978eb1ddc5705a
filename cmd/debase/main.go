package main

import (
	"os"

	"github.com/ian-shakespeare/debase/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
