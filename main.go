/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"github.com/jpl-au/juggler/cmd"

	// Registers the console features in navigation order
	_ "github.com/jpl-au/juggler/feature/all"
)

func main() {
	cmd.Execute()
}
