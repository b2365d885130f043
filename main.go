package main

import (
	"os"

	"github.com/jaemin/econquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
