package unitcheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/buger/goterm"
)

// Separator widths and characters follow the classic test-runner console
// format and must not change: downstream tooling parses them.
var (
	sepThick = strings.Repeat("=", 70)
	sepThin  = strings.Repeat("-", 70)
)

func maybeColor(s string, color int, colorized bool) string {

	if !colorized {
		return s
	}

	return goterm.Color(s, color)
}

func outcomeColor(o Outcome) int {

	switch o.Kind {
	case Failed:
		return goterm.YELLOW
	case Errored:
		return goterm.RED
	default:
		return goterm.GREEN
	}
}

// printMarker emits the live per-test marker: a single character in
// compact mode, `name (suite) ... ok` in verbose mode.
func printMarker(w io.Writer, tr testRun, verbose bool, colorized bool) {

	if !verbose {
		fmt.Fprint(w, maybeColor(tr.outcome.Marker(), outcomeColor(tr.outcome), colorized)) // nolint
		return
	}

	fmt.Fprintf(w, "%s ... %s\n", // nolint
		tr.test.CaseID(),
		maybeColor(tr.outcome.Word(), outcomeColor(tr.outcome), colorized),
	)
}

// printDetails emits one block per failed or errored test: heading,
// separator, traceback and signal line. In verbose mode the captured test
// log follows the traceback.
func printDetails(w io.Writer, results []testRun, verbose bool) {

	for _, tr := range results {

		if tr.outcome.Kind == Passed {
			continue
		}

		heading := "FAIL"
		if tr.outcome.Kind == Errored {
			heading = "ERROR"
		}

		fmt.Fprintln(w, sepThick)                                // nolint
		fmt.Fprintf(w, "%s: %s\n", heading, tr.test.CaseID())    // nolint
		fmt.Fprintln(w, sepThin)                                 // nolint
		fmt.Fprintln(w, "Traceback (most recent call last):")    // nolint
		printTrace(w, tr)                                        // nolint
		fmt.Fprintf(w, "%s: %s\n", tr.outcome.TypeName, tr.outcome.Message) // nolint

		if verbose && tr.logger.Len() > 0 {
			fmt.Fprintln(w)                      // nolint
			fmt.Fprintln(w, "Captured log:")     // nolint
			fmt.Fprintf(w, "  %s\n", strings.Replace(strings.TrimRight(tr.logger.String(), "\n"), "\n", "\n  ", -1)) // nolint
		}

		fmt.Fprintln(w) // nolint
	}
}

func printTrace(w io.Writer, tr testRun) {

	if tr.outcome.File != "" {
		fmt.Fprintf(w, "  File %q, line %d, in %s\n", tr.outcome.File, tr.outcome.Line, tr.test.Name) // nolint
		return
	}

	if len(tr.outcome.Stack) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Replace(strings.TrimRight(string(tr.outcome.Stack), "\n"), "\n", "\n  ", -1)) // nolint
	}
}

// printSummary emits the footer: thin separator, the Ran line, a blank
// line, then OK or FAILED.
func printSummary(w io.Writer, run *Run, colorized bool) {

	fmt.Fprintln(w, sepThin)      // nolint
	fmt.Fprintln(w, run.ranLine()) // nolint
	fmt.Fprintln(w)               // nolint

	status := run.summary()
	color := goterm.GREEN
	if !run.OK() {
		color = goterm.RED
	}

	fmt.Fprintln(w, maybeColor(status, color, colorized)) // nolint
}
