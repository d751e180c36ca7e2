package main

import (
	"os"

	"github.com/go-drawer/drawer/cmd/drawer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
