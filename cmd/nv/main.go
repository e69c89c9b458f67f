package main

import (
	"os"

	"github.com/tormodhaugland/nv/cmd/nv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
