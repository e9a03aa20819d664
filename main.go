// ./main.go
package main

import (
	"github.com/algolens/algolens/cmd"
)

// main is the entry point for the algolens CLI and service.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}
