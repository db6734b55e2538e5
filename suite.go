package unitcheck

import (
	"fmt"
)

// A Suite is an ordered collection of tests. Tests run in declaration
// order; nothing is ever sorted.
type Suite struct {
	Name  string
	tests []Test
}

// Register adds a test to the suite.
func (s *Suite) Register(t Test) {

	t.suite = s.Name
	t.id = makeTestID(s.Name, t.Name)

	for _, existing := range s.tests {
		if existing.Name == t.Name {
			panic(fmt.Sprintf("unitcheck: test %q registered twice in suite %q", t.Name, s.Name))
		}
	}

	s.tests = append(s.tests, t)
}

// Tests returns the suite's tests in declaration order.
func (s *Suite) Tests() []Test {
	out := make([]Test, len(s.tests))
	copy(out, s.tests)
	return out
}

func (s *Suite) String() string {
	return fmt.Sprintf("%s (%d tests)", s.Name, len(s.tests))
}

// testsWithIDs returns a copy of the suite narrowed to the given test ids.
func (s *Suite) testsWithIDs(ids []string) *Suite {

	out := &Suite{Name: s.Name}

	for _, t := range s.tests {
		for _, id := range ids {
			if t.id == id {
				out.tests = append(out.tests, t)
			}
		}
	}

	return out
}

// testsWithTags returns a copy of the suite narrowed to tests matching the
// given tags.
func (s *Suite) testsWithTags(matchAll bool, tags []string) *Suite {

	out := &Suite{Name: s.Name}

	for _, t := range s.tests {
		if t.MatchTags(tags, matchAll) {
			out.tests = append(out.tests, t)
		}
	}

	return out
}
