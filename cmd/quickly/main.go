// Command quickly lays out and previews view scenes described in YAML.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/quickly/cmd/quickly/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
