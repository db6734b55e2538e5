package exceptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/cgoldberg/unitcheck"
)

// ValueError is the error raised by raisesError.
type ValueError struct {
	msg string
}

func (e ValueError) Error() string { return e.msg }

func raisesError(args ...interface{}) error {
	return ValueError{msg: fmt.Sprintf("Invalid value: %v", args)}
}

func init() {

	suite := unitcheck.NewSuite("exceptions")

	suite.Register(unitcheck.Test{
		Name:        "test_trap_locally",
		Description: "Traps the expected error by hand and fails if it never shows up.",
		Author:      "Corey",
		Tags:        []string{"exceptions"},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			err := raisesError("a", "b=c")

			var verr ValueError
			if !errors.As(err, &verr) {
				unitcheck.Fail(t, "Did not see ValueError")
			}

			return nil
		},
	})

	suite.Register(unitcheck.Test{
		Name:        "test_assert_raises",
		Description: "Uses the Raises assertion instead of trapping by hand.",
		Author:      "Corey",
		Tags:        []string{"exceptions"},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			unitcheck.Raises(t, "raisesError raises ValueError", ValueError{}, func() error {
				return raisesError("a", "b=c")
			})

			unitcheck.RaisesRegexp(t, "the message names the values", ValueError{}, `Invalid value:.*a`, func() error {
				return raisesError("a", "b=c")
			})

			return nil
		},
	})
}
