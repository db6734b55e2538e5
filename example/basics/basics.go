package basics

import (
	"context"
	"os"
	"strings"

	"github.com/cgoldberg/unitcheck"
)

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

func init() {

	suite := unitcheck.NewSuite("basics")

	suite.Register(unitcheck.Test{
		Name:        "test_truth",
		Description: "Checks the truth and falsity assertions.",
		Author:      "Corey",
		Tags:        []string{"assertions"},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			unitcheck.True(t, "true is true", true)
			unitcheck.False(t, "false is false", false)

			return nil
		},
	})

	suite.Register(unitcheck.Test{
		Name:        "test_equality",
		Description: "Checks generic and deep equality assertions.",
		Author:      "Corey",
		Tags:        []string{"assertions"},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			unitcheck.Equal(t, "ints compare", 1, 3-2)
			unitcheck.NotEqual(t, "ints differ", 1, 2)
			unitcheck.Resembles(t, "slices compare deeply", []int{1, 2, 3}, []int{1, 2, 3})
			unitcheck.ElementsMatch(t, "order does not matter", []int{3, 1, 2}, []int{1, 2, 3})

			return nil
		},
	})

	suite.Register(unitcheck.Test{
		Name:        "test_almost_equal",
		Description: "Checks approximate float equality by places and by delta.",
		Author:      "Corey",
		Tags:        []string{"assertions", "floats"},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			unitcheck.AlmostEqualPlaces(t, "equal to 7 places", 1.1, 3.3-2.2, 7)
			unitcheck.AlmostEqual(t, "within delta", 1.0, 1.001, 0.01)

			return nil
		},
	})

	suite.Register(unitcheck.Test{
		Name:        "test_membership_and_patterns",
		Description: "Checks membership, type and regexp assertions.",
		Author:      "Corey",
		Tags:        []string{"assertions"},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			unitcheck.In(t, "element in slice", 2, []int{1, 2, 3})
			unitcheck.NotIn(t, "element not in slice", 5, []int{1, 2, 3})
			unitcheck.In(t, "substring in string", "uni", "unitcheck")
			unitcheck.IsType(t, "string has string type", "hello", "")
			unitcheck.Matches(t, "pattern found", "unitcheck 1.0", `\d+\.\d+`)
			unitcheck.NotMatches(t, "pattern absent", "unitcheck", `\d`)

			return nil
		},
	})

	suite.Register(unitcheck.Test{
		Name:        "test_fixture_files",
		Description: "Creates a scratch file in setup and reads it back in the test.",
		Author:      "Corey",
		Tags:        []string{"fixtures"},
		Setup: func(ctx context.Context, t unitcheck.TestInfo) (interface{}, unitcheck.TearDownFunction, error) {

			path, clean, err := unitcheck.CreateTestFile(t, "greeting.txt", []byte("hello, tests\n"))
			if err != nil {
				return nil, nil, err
			}

			return path, func() { clean() }, nil // nolint
		},
		Function: func(ctx context.Context, t unitcheck.TestInfo) error {

			path := t.SetupInfo().(string)

			var content string
			unitcheck.Step(t, "When I read the fixture file", func() error {
				data, err := readFile(path)
				content = data
				return err
			})

			unitcheck.True(t, "content was preserved", strings.Contains(content, "hello"))

			return nil
		},
	})
}
