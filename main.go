package main

import (
	"os"

	"github.com/stadtratwatch/ratsinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
