package main

import (
	"os"

	"github.com/dverney/quizine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
