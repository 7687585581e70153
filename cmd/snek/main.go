package main

import (
	"os"

	"github.com/sneklang/go-snek/cmd/snek/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
