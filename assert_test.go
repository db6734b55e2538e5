package unitcheck

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured(f func()) (recovered interface{}) {
	defer func() { recovered = recover() }()
	f()
	return recovered
}

type valueError struct {
	msg string
}

func (e valueError) Error() string { return e.msg }

func TestEqualPassesSilently(t *testing.T) {

	buf := &bytes.Buffer{}

	rec := captured(func() { Equal(buf, "ints compare", 1, 3-2) })

	require.Nil(t, rec)
	assert.Contains(t, buf.String(), "[PASS] ints compare")
}

func TestNotEqualAutoMessage(t *testing.T) {

	rec := captured(func() { NotEqual(nil, "", 1, 3-2) })

	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "1 == 1", ae.msg)
	assert.NotEmpty(t, ae.file)
	assert.NotZero(t, ae.line)
}

func TestCallerMessageWins(t *testing.T) {

	rec := captured(func() { Equal(nil, "these should match", 1, 2) })

	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "these should match", ae.msg)
}

func TestTruthAssertions(t *testing.T) {

	require.Nil(t, captured(func() { True(nil, "", true) }))
	require.Nil(t, captured(func() { False(nil, "", false) }))

	rec := captured(func() { True(nil, "", false) })
	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "false is not true", ae.msg)

	rec = captured(func() { False(nil, "", true) })
	ae, ok = rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "true is not false", ae.msg)
}

func TestNilAssertions(t *testing.T) {

	require.Nil(t, captured(func() { Nil(nil, "", nil) }))
	require.Nil(t, captured(func() { NotNil(nil, "", 42) }))

	rec := captured(func() { Nil(nil, "", 42) })
	require.IsType(t, assertionError{}, rec)

	rec = captured(func() { NotNil(nil, "", nil) })
	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "unexpectedly nil", ae.msg)
}

func TestIdentityAssertions(t *testing.T) {

	a := &valueError{msg: "x"}
	b := &valueError{msg: "x"}

	require.Nil(t, captured(func() { Same(nil, "", a, a) }))
	require.Nil(t, captured(func() { NotSame(nil, "", a, b) }))

	rec := captured(func() { Same(nil, "", a, b) })
	require.IsType(t, assertionError{}, rec)

	rec = captured(func() { NotSame(nil, "", a, a) })
	require.IsType(t, assertionError{}, rec)
}

func TestMembershipAssertions(t *testing.T) {

	require.Nil(t, captured(func() { In(nil, "", 2, []int{1, 2, 3}) }))
	require.Nil(t, captured(func() { NotIn(nil, "", 5, []int{1, 2, 3}) }))
	require.Nil(t, captured(func() { In(nil, "", "uni", "unitcheck") }))

	rec := captured(func() { In(nil, "", 5, []int{1, 2, 3}) })
	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "5 not found in [1 2 3]", ae.msg)
}

func TestTypeAssertion(t *testing.T) {

	require.Nil(t, captured(func() { IsType(nil, "", "hello", "") }))

	rec := captured(func() { IsType(nil, "", 42, "") })
	require.IsType(t, assertionError{}, rec)
}

func TestAlmostEqualAssertions(t *testing.T) {

	require.Nil(t, captured(func() { AlmostEqualPlaces(nil, "", 1.1, 3.3-2.2, 7) }))
	require.Nil(t, captured(func() { AlmostEqual(nil, "", 1.0, 1.001, 0.01) }))

	rec := captured(func() { AlmostEqualPlaces(nil, "", 1.1, 1.2, 7) })
	require.IsType(t, assertionError{}, rec)

	// A 1.0e-7 difference exceeds the places-7 tolerance of 5e-8.
	rec = captured(func() { AlmostEqualPlaces(nil, "", 3.1415926, 3.1415927, 7) })
	require.IsType(t, assertionError{}, rec)
	assert.Nil(t, captured(func() { AlmostEqualPlaces(nil, "", 3.1415926, 3.1415927, 6) }))

	rec = captured(func() { AlmostEqual(nil, "", 1.0, 1.1, 0.01) })
	require.IsType(t, assertionError{}, rec)
}

func TestOrderingAssertions(t *testing.T) {

	require.Nil(t, captured(func() { Greater(nil, "", 2, 1) }))
	require.Nil(t, captured(func() { GreaterOrEqual(nil, "", 2, 2) }))
	require.Nil(t, captured(func() { Less(nil, "", 1, 2) }))
	require.Nil(t, captured(func() { LessOrEqual(nil, "", 2, 2) }))

	rec := captured(func() { Less(nil, "", 2, 1) })
	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "2 not less than 1", ae.msg)
}

func TestPatternAssertions(t *testing.T) {

	require.Nil(t, captured(func() { Matches(nil, "", "unitcheck 1.0", `\d+\.\d+`) }))
	require.Nil(t, captured(func() { NotMatches(nil, "", "unitcheck", `\d`) }))

	rec := captured(func() { Matches(nil, "", "unitcheck", `\d`) })
	require.IsType(t, assertionError{}, rec)

	// A broken pattern is not an assertion failure.
	rec = captured(func() { Matches(nil, "", "x", `(`) })
	require.NotNil(t, rec)
	_, ok := rec.(assertionError)
	assert.False(t, ok)
}

func TestElementsMatchAssertion(t *testing.T) {

	require.Nil(t, captured(func() { ElementsMatch(nil, "", []int{3, 1, 2}, []int{1, 2, 3}) }))
	require.Nil(t, captured(func() { ElementsMatch(nil, "", []string{"a", "a", "b"}, []string{"b", "a", "a"}) }))

	rec := captured(func() { ElementsMatch(nil, "", []int{1, 1, 2}, []int{1, 2, 2}) })
	require.IsType(t, assertionError{}, rec)
}

func TestDeepEqualityAssertions(t *testing.T) {

	require.Nil(t, captured(func() { Resembles(nil, "", []int{1, 2}, []int{1, 2}) }))
	require.Nil(t, captured(func() { Resembles(nil, "", map[string]int{"a": 1}, map[string]int{"a": 1}) }))
	require.Nil(t, captured(func() { NotResembles(nil, "", []int{1, 2}, []int{2, 1}) }))

	rec := captured(func() { Resembles(nil, "", []int{1, 2}, []int{2, 1}) })
	require.IsType(t, assertionError{}, rec)
}

func TestFailAssertion(t *testing.T) {

	rec := captured(func() { Fail(nil, "Did not see ValueError") })

	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Equal(t, "Did not see ValueError", ae.msg)
}

func TestRaisesWithMatchingError(t *testing.T) {

	rec := captured(func() {
		Raises(nil, "", valueError{}, func() error {
			return valueError{msg: "Invalid value: [a b=c]"}
		})
	})

	require.Nil(t, rec)
}

func TestRaisesWithMatchingPanic(t *testing.T) {

	rec := captured(func() {
		Raises(nil, "", valueError{}, func() error {
			panic(valueError{msg: "boom"})
		})
	})

	require.Nil(t, rec)
}

func TestRaisesWithoutSignalFails(t *testing.T) {

	rec := captured(func() {
		Raises(nil, "", valueError{}, func() error { return nil })
	})

	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Contains(t, ae.msg, "not raised")
}

func TestRaisesWithDifferentSignalPropagates(t *testing.T) {

	boom := errors.New("boom")

	rec := captured(func() {
		Raises(nil, "", valueError{}, func() error { return boom })
	})

	require.NotNil(t, rec)
	_, ok := rec.(assertionError)
	assert.False(t, ok)
	assert.Equal(t, boom, rec)
}

func TestRaisesRegexp(t *testing.T) {

	f := func() error { return valueError{msg: "Invalid value: [a b=c]"} }

	require.Nil(t, captured(func() { RaisesRegexp(nil, "", valueError{}, `Invalid value:.*a`, f) }))

	rec := captured(func() { RaisesRegexp(nil, "", valueError{}, `no such message`, f) })
	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.Contains(t, ae.msg, "does not match pattern")
}

func TestGenericAssert(t *testing.T) {

	buf := &bytes.Buffer{}

	rec := captured(func() { Assert(buf, "they are equal", 1, convey.ShouldEqual, 1) })
	require.Nil(t, rec)
	assert.Contains(t, buf.String(), "[PASS] they are equal")

	rec = captured(func() { Assert(nil, "", 1, convey.ShouldEqual, 2) })
	ae, ok := rec.(assertionError)
	require.True(t, ok)
	assert.NotEmpty(t, ae.msg)
}

func TestSameSignalTypeWrapping(t *testing.T) {

	wrapped := fmt.Errorf("context: %w", valueError{msg: "inner"})

	assert.True(t, sameSignalType(wrapped, valueError{}))
	assert.False(t, sameSignalType(errors.New("other"), valueError{}))
}

func TestPassLineOnlyWithMessage(t *testing.T) {

	buf := &bytes.Buffer{}
	True(buf, "", true)
	assert.Zero(t, buf.Len())

	True(buf, "is true", true)
	assert.True(t, strings.HasPrefix(buf.String(), "- [PASS] "))
}
