package unitcheck

import (
	"fmt"
	"io"
	"time"
)

// A TestInfo contains various information about a running test. It is the
// test function's handle on its fixture data and its log: writes end up in
// the per-case log buffer shown in failure reports.
type TestInfo struct {
	testID         string
	suiteName      string
	testName       string
	data           interface{}
	timeout        time.Duration
	writer         io.Writer
	timeOfLastStep *time.Time
}

func newTestInfo(t Test, timeout time.Duration, w io.Writer) TestInfo {

	now := time.Now()

	return TestInfo{
		testID:         t.id,
		suiteName:      t.suite,
		testName:       t.Name,
		timeout:        timeout,
		writer:         w,
		timeOfLastStep: &now,
	}
}

// TestID returns the short unique identifier of the test. It can be used to
// derive names for per-test resources such as scratch directories.
func (t TestInfo) TestID() string { return t.testID }

// SuiteName returns the name of the suite the test belongs to.
func (t TestInfo) SuiteName() string { return t.suiteName }

// TestName returns the name of the test.
func (t TestInfo) TestName() string { return t.testName }

// CaseID returns the report identifier, as `name (suite)`.
func (t TestInfo) CaseID() string { return fmt.Sprintf("%s (%s)", t.testName, t.suiteName) }

// SetupInfo returns the eventual object stored by the Setup function.
func (t TestInfo) SetupInfo() interface{} { return t.data }

// Timeout provides the duration before the run deadline.
func (t TestInfo) Timeout() time.Duration { return t.timeout }

// Write performs a write into the test log.
func (t TestInfo) Write(p []byte) (n int, err error) { return t.writer.Write(p) }

// TimeSinceLastStep provides the time since the last step or the start of
// the test.
func (t TestInfo) TimeSinceLastStep() string {
	d := time.Since(*t.timeOfLastStep)
	return d.Round(time.Millisecond).String()
}

func (t TestInfo) markStep() { *t.timeOfLastStep = time.Now() }

// Step runs a named step of a test, logging its duration. An error returned
// by the step errors the whole test.
func Step(t TestInfo, name string, f func() error) {

	if err := f(); err != nil {
		fmt.Fprintf(t, "- [STEP] %s failed after %s: %s\n", name, t.TimeSinceLastStep(), err) // nolint
		panic(err)
	}

	fmt.Fprintf(t, "- [STEP] %s (%s)\n", name, t.TimeSinceLastStep()) // nolint
	t.markStep()
}
