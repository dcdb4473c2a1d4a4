package main

import (
	"os"

	"github.com/avokic/redditkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
