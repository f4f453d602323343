package main

import (
	"os"

	"github.com/CodeStranger-Fred/banditlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
