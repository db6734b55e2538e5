package unitcheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"
)

type testRun struct {
	test    Test
	logger  *bytes.Buffer
	outcome Outcome
	elapsed time.Duration
}

type testRunner struct {
	out           io.Writer
	verbose       bool
	color         bool
	stopOnFailure bool
	timeout       time.Duration
}

func newTestRunner(
	out io.Writer,
	verbose bool,
	color bool,
	stopOnFailure bool,
	timeout time.Duration,
) *testRunner {

	return &testRunner{
		out:           out,
		verbose:       verbose,
		color:         color,
		stopOnFailure: stopOnFailure,
		timeout:       timeout,
	}
}

// Run executes every test of every suite sequentially, in declaration
// order, emitting live markers as it goes, then the detail blocks and the
// summary. The summary is always reached: failures never abort the run.
func (r *testRunner) Run(ctx context.Context, suites []*Suite) *Run {

	run := &Run{}
	start := time.Now()

loop:
	for _, suite := range suites {
		for _, test := range suite.tests {

			select {
			case <-ctx.Done():
				break loop
			default:
			}

			tr := r.runTest(ctx, test)
			run.Results = append(run.Results, tr)

			printMarker(r.out, tr, r.verbose, r.color)

			if r.stopOnFailure && tr.outcome.Kind != Passed {
				break loop
			}
		}
	}

	run.Elapsed = time.Since(start)

	// Terminates the compact marker line, or leaves one blank line after
	// the verbose listing.
	fmt.Fprintln(r.out) // nolint

	printDetails(r.out, run.Results, r.verbose)
	printSummary(r.out, run, r.color)

	return run
}

func (r *testRunner) runTest(ctx context.Context, test Test) testRun {

	tr := testRun{
		test:   test,
		logger: &bytes.Buffer{},
	}

	info := newTestInfo(test, r.timeout, tr.logger)

	start := time.Now()
	tr.outcome = executeCase(ctx, test, info)
	tr.elapsed = time.Since(start)

	return tr
}

// executeCase runs setup, body and teardown, and records exactly one
// Outcome. Teardown runs on every exit path once setup succeeded; a failed
// setup skips the body. The body's outcome takes precedence over the
// teardown's.
func executeCase(ctx context.Context, test Test, info TestInfo) Outcome {

	var teardown TearDownFunction

	if test.Setup != nil {

		var out Outcome
		teardown, info, out = runSetup(ctx, test, info)
		if out.Kind != Passed {
			return out
		}
	}

	body := guarded(func() error { return test.Function(ctx, info) })

	if teardown != nil {
		cleanup := guarded(func() error { teardown(); return nil })
		if body.Kind == Passed {
			body = cleanup
		}
	}

	return body
}

func runSetup(ctx context.Context, test Test, info TestInfo) (TearDownFunction, TestInfo, Outcome) {

	var teardown TearDownFunction

	out := guarded(func() error {
		data, td, err := test.Setup(ctx, info)
		if err != nil {
			return err
		}
		info.data = data
		teardown = td
		return nil
	})

	return teardown, info, out
}

// guarded runs f and converts its exit path into an Outcome: a recovered
// assertionError is a failure, any other recovered value or a returned
// error is an error, everything else passed.
func guarded(f func() error) Outcome {

	var err error
	var out Outcome
	panicked := false

	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				out = classifyPanic(r)
			}
		}()
		err = f()
	}()

	if panicked {
		return out
	}

	if err != nil {
		return Outcome{
			Kind:     Errored,
			Message:  err.Error(),
			TypeName: fmt.Sprintf("%T", err),
		}
	}

	return Outcome{Kind: Passed}
}

func classifyPanic(r interface{}) Outcome {

	if ae, ok := r.(assertionError); ok {
		return Outcome{
			Kind:     Failed,
			Message:  ae.msg,
			TypeName: "AssertionError",
			File:     ae.file,
			Line:     ae.line,
		}
	}

	return Outcome{
		Kind:     Errored,
		Message:  fmt.Sprintf("%v", r),
		TypeName: fmt.Sprintf("%T", r),
		Stack:    debug.Stack(),
	}
}
