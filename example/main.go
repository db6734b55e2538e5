package main

import (
	"os"

	"github.com/cgoldberg/unitcheck"

	// Import all the test suites
	_ "github.com/cgoldberg/unitcheck/example/basics"
	_ "github.com/cgoldberg/unitcheck/example/exceptions"
)

func main() {

	if err := unitcheck.NewCommand("example", "unitcheck example test program", "1.0").Execute(); err != nil {
		os.Exit(1)
	}
}
