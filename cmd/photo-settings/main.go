package main

import (
	"fmt"
	"os"

	"github.com/treykane/photo-settings/cmd/photo-settings/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
