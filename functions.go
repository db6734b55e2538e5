package unitcheck

import (
	"context"
)

// A TestFunction is the type of a function that is run by a Test.
// Returning a non-nil error marks the test as errored.
type TestFunction func(context.Context, TestInfo) error

// SetupFunction is the type of function that can be run as a test setup.
// The returned data will be available to the main test function using the
// TestInfo.SetupInfo() function.
// The returned function will be run at the end of the test, on every exit
// path, including when the test function raises.
//
// If SetupFunction fails, the test function is not run and the test is
// reported with the setup's outcome.
type SetupFunction func(context.Context, TestInfo) (interface{}, TearDownFunction, error)

// A TearDownFunction is the type of function returned by a SetupFunction.
type TearDownFunction func()

// Cleanup function is a type function.
type Cleanup func() error
