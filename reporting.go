package unitcheck

import (
	"fmt"
	"strings"
	"time"
)

// A Run is the ordered record of one runner invocation: every executed
// (test, outcome) pair plus the total elapsed time.
type Run struct {
	Results []testRun
	Elapsed time.Duration
}

// Counts returns the number of passed, failed and errored tests.
func (r *Run) Counts() (passed int, failed int, errored int) {

	for _, tr := range r.Results {
		switch tr.outcome.Kind {
		case Failed:
			failed++
		case Errored:
			errored++
		default:
			passed++
		}
	}

	return passed, failed, errored
}

// OK reports whether the run contains no failed or errored test.
func (r *Run) OK() bool {

	_, failed, errored := r.Counts()
	return failed == 0 && errored == 0
}

// summary renders the final status line: `OK`, or `FAILED (...)` listing
// only the nonzero categories.
func (r *Run) summary() string {

	_, failed, errored := r.Counts()

	if failed == 0 && errored == 0 {
		return "OK"
	}

	parts := make([]string, 0, 2)
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("failures=%d", failed))
	}
	if errored > 0 {
		parts = append(parts, fmt.Sprintf("errors=%d", errored))
	}

	return fmt.Sprintf("FAILED (%s)", strings.Join(parts, ", "))
}

// ranLine renders the `Ran N tests in T` line with python-style
// pluralization and millisecond precision.
func (r *Run) ranLine() string {

	plural := "s"
	if len(r.Results) == 1 {
		plural = ""
	}

	return fmt.Sprintf("Ran %d test%s in %.3fs", len(r.Results), plural, r.Elapsed.Seconds())
}
