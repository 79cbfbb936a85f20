package main

import (
	"os"

	"github.com/LinosCo/trainbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
