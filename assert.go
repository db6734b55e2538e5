package unitcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"regexp"
	"runtime"

	"github.com/smartystreets/goconvey/convey"
)

type res struct {
	Actual   interface{}
	Expected interface{}
}

// assertionError is the distinguished assertion-failure signal. The runner
// recovers it at the case boundary and records a Failed outcome; any other
// recovered value yields an Errored one.
type assertionError struct {
	msg      string
	file     string
	line     int
	Expected interface{}
	Actual   interface{}
}

func (e assertionError) Error() string { return e.msg }

// raise panics with an assertionError locating the frame skip levels up.
func raise(e assertionError, skip int) {

	if _, file, line, ok := runtime.Caller(skip); ok {
		e.file = file
		e.line = line
	}

	panic(e)
}

// failure builds the signal, preferring the caller-supplied message over the
// auto-generated description of the failed condition.
func failure(message string, auto string) assertionError {

	if message == "" {
		message = auto
	}

	return assertionError{msg: message}
}

func logPass(w io.Writer, message string) {

	if w == nil || message == "" {
		return
	}

	fmt.Fprintf(w, "- [PASS] %s\n", message) // nolint
}

// Assert can use any goconvey function to perform an assertion.
func Assert(w io.Writer, message string, actual interface{}, f func(interface{}, ...interface{}) string, expected ...interface{}) {

	if msg := f(actual, expected...); msg != "" {

		e := failure(message, msg)
		r := res{}
		if err := json.Unmarshal([]byte(msg), &r); err == nil {
			e.Expected = r.Expected
			e.Actual = r.Actual
			if message == "" {
				e.msg = fmt.Sprintf("expected: '%v', actual: '%v'", r.Expected, r.Actual)
			}
		}

		raise(e, 2)
	}

	logPass(w, message)
}

// True asserts that v is true.
func True(w io.Writer, message string, v bool) {

	if convey.ShouldBeTrue(v) != "" {
		raise(failure(message, fmt.Sprintf("%v is not true", v)), 2)
	}

	logPass(w, message)
}

// False asserts that v is false.
func False(w io.Writer, message string, v bool) {

	if convey.ShouldBeFalse(v) != "" {
		raise(failure(message, fmt.Sprintf("%v is not false", v)), 2)
	}

	logPass(w, message)
}

// Nil asserts that v is nil.
func Nil(w io.Writer, message string, v interface{}) {

	if convey.ShouldBeNil(v) != "" {
		raise(failure(message, fmt.Sprintf("%v is not nil", v)), 2)
	}

	logPass(w, message)
}

// NotNil asserts that v is not nil.
func NotNil(w io.Writer, message string, v interface{}) {

	if convey.ShouldNotBeNil(v) != "" {
		raise(failure(message, "unexpectedly nil"), 2)
	}

	logPass(w, message)
}

// Equal asserts that actual equals expected.
func Equal(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldEqual(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v != %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// NotEqual asserts that actual differs from expected.
func NotEqual(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldNotEqual(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v == %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// Resembles asserts deep equality. It covers sequences, maps and structs.
func Resembles(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldResemble(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v != %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// NotResembles asserts deep inequality.
func NotResembles(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldNotResemble(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v == %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// Same asserts that actual and expected are the same object.
func Same(w io.Writer, message string, actual interface{}, expected interface{}) {

	if !isSame(actual, expected) {
		raise(failure(message, fmt.Sprintf("%v is not %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// NotSame asserts that actual and expected are distinct objects.
func NotSame(w io.Writer, message string, actual interface{}, expected interface{}) {

	if isSame(actual, expected) {
		raise(failure(message, fmt.Sprintf("unexpectedly identical: %v", actual)), 2)
	}

	logPass(w, message)
}

// In asserts that member is contained in container. Containers can be
// slices, arrays or strings.
func In(w io.Writer, message string, member interface{}, container interface{}) {

	if !contains(container, member) {
		raise(failure(message, fmt.Sprintf("%v not found in %v", member, container)), 2)
	}

	logPass(w, message)
}

// NotIn asserts that member is not contained in container.
func NotIn(w io.Writer, message string, member interface{}, container interface{}) {

	if contains(container, member) {
		raise(failure(message, fmt.Sprintf("%v unexpectedly found in %v", member, container)), 2)
	}

	logPass(w, message)
}

// IsType asserts that actual has the same type as model.
func IsType(w io.Writer, message string, actual interface{}, model interface{}) {

	if convey.ShouldHaveSameTypeAs(actual, model) != "" {
		raise(failure(message, fmt.Sprintf("%v is not an instance of %T", actual, model)), 2)
	}

	logPass(w, message)
}

// AlmostEqual asserts that two floats are equal within an absolute delta.
func AlmostEqual(w io.Writer, message string, actual float64, expected float64, delta float64) {

	if convey.ShouldAlmostEqual(actual, expected, delta) != "" {
		raise(failure(message, fmt.Sprintf("%v != %v within %v delta", actual, expected, delta)), 2)
	}

	logPass(w, message)
}

// AlmostEqualPlaces asserts that two floats are equal when rounded to the
// given number of decimal places.
func AlmostEqualPlaces(w io.Writer, message string, actual float64, expected float64, places int) {

	delta := 0.5 * math.Pow(10, float64(-places))

	if convey.ShouldAlmostEqual(actual, expected, delta) != "" {
		raise(failure(message, fmt.Sprintf("%v != %v within %d places", actual, expected, places)), 2)
	}

	logPass(w, message)
}

// Greater asserts actual > expected.
func Greater(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldBeGreaterThan(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v not greater than %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// GreaterOrEqual asserts actual >= expected.
func GreaterOrEqual(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldBeGreaterThanOrEqualTo(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v not greater than or equal to %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// Less asserts actual < expected.
func Less(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldBeLessThan(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v not less than %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// LessOrEqual asserts actual <= expected.
func LessOrEqual(w io.Writer, message string, actual interface{}, expected interface{}) {

	if convey.ShouldBeLessThanOrEqualTo(actual, expected) != "" {
		raise(failure(message, fmt.Sprintf("%v not less than or equal to %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// Matches asserts that s matches the regular expression pattern.
func Matches(w io.Writer, message string, s string, pattern string) {

	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(err)
	}

	if !re.MatchString(s) {
		raise(failure(message, fmt.Sprintf("pattern %q not found in %q", pattern, s)), 2)
	}

	logPass(w, message)
}

// NotMatches asserts that s does not match the regular expression pattern.
func NotMatches(w io.Writer, message string, s string, pattern string) {

	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(err)
	}

	if re.MatchString(s) {
		raise(failure(message, fmt.Sprintf("pattern %q unexpectedly matched %q", pattern, s)), 2)
	}

	logPass(w, message)
}

// ElementsMatch asserts that two sequences contain the same elements
// regardless of order.
func ElementsMatch(w io.Writer, message string, actual interface{}, expected interface{}) {

	ca, err := elementCounts(actual)
	if err != nil {
		panic(err)
	}

	ce, err := elementCounts(expected)
	if err != nil {
		panic(err)
	}

	if !reflect.DeepEqual(ca, ce) {
		raise(failure(message, fmt.Sprintf("element counts differ: %v vs %v", actual, expected)), 2)
	}

	logPass(w, message)
}

// Fail fails the test unconditionally.
func Fail(w io.Writer, message string) {
	raise(failure(message, "explicit failure"), 2)
}

// Raises asserts that calling f raises a signal of the same type as target.
// f can signal by returning a non-nil error or by panicking. If f raises a
// signal of a different type, that signal propagates past the check and
// errors the test. If f raises nothing, the test fails.
func Raises(w io.Writer, message string, target error, f func() error) {
	raisesMatching(w, message, target, "", f)
}

// RaisesRegexp is Raises with an additional regular expression the signal's
// message must match.
func RaisesRegexp(w io.Writer, message string, target error, pattern string, f func() error) {
	raisesMatching(w, message, target, pattern, f)
}

func raisesMatching(w io.Writer, message string, target error, pattern string, f func() error) {

	if target == nil {
		panic(errors.New("unitcheck: Raises needs a non-nil target error"))
	}

	signal, raised := invoke(f)

	if !raised {
		raise(failure(message, fmt.Sprintf("%T not raised", target)), 3)
	}

	if !sameSignalType(signal, target) {
		panic(signal)
	}

	if pattern != "" {

		re, err := regexp.Compile(pattern)
		if err != nil {
			panic(err)
		}

		text := fmt.Sprintf("%v", signal)
		if !re.MatchString(text) {
			raise(failure(message, fmt.Sprintf("%q does not match pattern %q", text, pattern)), 3)
		}
	}

	logPass(w, message)
}

// invoke calls f, converting both a returned error and a panic into a
// single raised-signal representation.
func invoke(f func() error) (signal interface{}, raised bool) {

	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				signal = r
				raised = true
			}
		}()
		err = f()
	}()

	if raised {
		return signal, true
	}

	if err != nil {
		return err, true
	}

	return nil, false
}

func sameSignalType(signal interface{}, target error) bool {

	if err, ok := signal.(error); ok {

		if reflect.TypeOf(err) == reflect.TypeOf(target) {
			return true
		}

		if errors.Is(err, target) {
			return true
		}

		probe := reflect.New(reflect.TypeOf(target))
		return errors.As(err, probe.Interface())
	}

	return reflect.TypeOf(signal) == reflect.TypeOf(target)
}

func isSame(a interface{}, b interface{}) bool {

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	if va.Kind() != vb.Kind() {
		return false
	}

	switch va.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}

	return a == b
}

func contains(container interface{}, member interface{}) bool {

	if s, ok := container.(string); ok {
		return convey.ShouldContainSubstring(s, member) == ""
	}

	return convey.ShouldContain(container, member) == ""
}

func elementCounts(v interface{}) (map[string]int, error) {

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("unable to count elements: %T is not a sequence", v)
	}

	counts := map[string]int{}
	for i := 0; i < rv.Len(); i++ {
		counts[fmt.Sprintf("%#v", rv.Index(i).Interface())]++
	}

	return counts, nil
}
