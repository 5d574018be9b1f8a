package main

import (
	"os"

	"github.com/carrierops/interpreter/cmd/carrierctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
