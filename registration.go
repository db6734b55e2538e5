package unitcheck

// The main registry. Suites are kept in registration order, which is the
// only ordering guarantee across suites.
var mainSuites []*Suite

var defaultSuite *Suite

// NewSuite declares and registers a named suite. Suite packages typically
// call it from init().
func NewSuite(name string) *Suite {

	for _, s := range mainSuites {
		if s.Name == name {
			return s
		}
	}

	s := &Suite{Name: name}
	mainSuites = append(mainSuites, s)

	return s
}

// RegisterTest registers a test in the main suite.
func RegisterTest(t Test) { defaultSuite.Register(t) }

func init() { defaultSuite = NewSuite("main") }
