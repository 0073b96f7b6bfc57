package main

import (
	"os"

	"github.com/hlubek/ftlparse/cmd/ftlparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
