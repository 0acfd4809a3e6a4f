package main

import (
	"fmt"
	"os"

	"graphvault/cmd/gv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
