package unitcheck

// An OutcomeKind classifies the result of executing a single Test.
type OutcomeKind int

// Possible outcome kinds. There is no explicit pass signal: a test that
// raises nothing and returns no error passed.
const (
	Passed OutcomeKind = iota
	Failed
	Errored
)

// An Outcome is the recorded result of one Test execution. Exactly one
// Outcome exists per execution.
type Outcome struct {
	Kind OutcomeKind

	// Message carries the assertion message for Failed, the signal's
	// message for Errored, and is empty for Passed.
	Message string

	// TypeName is the Go type of the unexpected signal for Errored
	// outcomes, "AssertionError" for Failed ones.
	TypeName string

	// File and Line locate the raising assertion when known.
	File string
	Line int

	// Stack holds the captured goroutine stack for Errored outcomes
	// produced by a panic.
	Stack []byte
}

// Marker returns the compact-mode marker for the outcome.
func (o Outcome) Marker() string {
	switch o.Kind {
	case Failed:
		return "F"
	case Errored:
		return "E"
	default:
		return "."
	}
}

// Word returns the verbose-mode word for the outcome.
func (o Outcome) Word() string {
	switch o.Kind {
	case Failed:
		return "FAIL"
	case Errored:
		return "ERROR"
	default:
		return "ok"
	}
}
