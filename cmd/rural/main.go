package main

import (
	"fmt"
	"os"

	"github.com/nojima/rural-go"
)

func main() {
	if err := rural.Main(&rural.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(rural.ExitCode(err))
	}
}
