package unitcheck

import (
	"fmt"

	"github.com/buger/goterm"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

func listTests(suites []*Suite) error {

	for _, suite := range suites {

		fmt.Printf("%s\n\n", goterm.Bold(goterm.Color(suite.Name, goterm.CYAN)))

		for _, t := range suite.tests {
			fmt.Printf("%s %s\n", goterm.Color(t.id, goterm.BLUE), goterm.Bold(t.Name))
			fmt.Printf("%s\n\n", wordwrap.WrapString(fmt.Sprintf("  %s — %s", t.Description, t.Author), 120))
		}
	}

	return nil
}

func listSuites(suites []*Suite) error {

	for _, suite := range suites {
		fmt.Printf("%s\n", suite)
	}

	return nil
}
