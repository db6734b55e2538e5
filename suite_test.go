package unitcheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, t TestInfo) error { return nil }

func TestDeclarationOrderPreserved(t *testing.T) {

	s := &Suite{Name: "ordered"}
	s.Register(Test{Name: "test_c", Function: noop})
	s.Register(Test{Name: "test_a", Function: noop})
	s.Register(Test{Name: "test_b", Function: noop})

	tests := s.Tests()
	require.Len(t, tests, 3)
	assert.Equal(t, "test_c", tests[0].Name)
	assert.Equal(t, "test_a", tests[1].Name)
	assert.Equal(t, "test_b", tests[2].Name)
}

func TestDuplicateRegistrationPanics(t *testing.T) {

	s := &Suite{Name: "dup"}
	s.Register(Test{Name: "test_x", Function: noop})

	assert.Panics(t, func() { s.Register(Test{Name: "test_x", Function: noop}) })
}

func TestRegisterAssignsIdentity(t *testing.T) {

	s := &Suite{Name: "idsuite"}
	s.Register(Test{Name: "test_x", Function: noop})

	registered := s.Tests()[0]
	assert.Equal(t, makeTestID("idsuite", "test_x"), registered.id)
	assert.Equal(t, "test_x (idsuite)", registered.CaseID())
}

func TestMakeTestIDStable(t *testing.T) {

	a := makeTestID("suite", "test")
	b := makeTestID("suite", "test")
	c := makeTestID("suite", "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 8)
}

func TestTagMatching(t *testing.T) {

	test := Test{Name: "test_tags", Tags: []string{"slow", "net"}}

	assert.True(t, test.MatchTags(nil, false))
	assert.True(t, test.MatchTags([]string{"slow"}, false))
	assert.True(t, test.MatchTags([]string{"slow", "missing"}, false))
	assert.False(t, test.MatchTags([]string{"missing"}, false))

	assert.True(t, test.MatchTags([]string{"slow", "net"}, true))
	assert.False(t, test.MatchTags([]string{"slow", "missing"}, true))
	assert.False(t, test.MatchTags([]string{"~net"}, true))
	assert.True(t, test.MatchTags([]string{"slow", "~missing"}, true))
}

func TestSuiteNarrowing(t *testing.T) {

	s := &Suite{Name: "narrow"}
	s.Register(Test{Name: "test_fast", Tags: []string{"fast"}, Function: noop})
	s.Register(Test{Name: "test_slow", Tags: []string{"slow"}, Function: noop})

	byTag := s.testsWithTags(false, []string{"slow"})
	require.Len(t, byTag.tests, 1)
	assert.Equal(t, "test_slow", byTag.tests[0].Name)

	id := s.Tests()[0].id
	byID := s.testsWithIDs([]string{id})
	require.Len(t, byID.tests, 1)
	assert.Equal(t, "test_fast", byID.tests[0].Name)

	assert.Empty(t, s.testsWithIDs([]string{"deadbeef"}).tests)
}

func TestNewSuiteIsIdempotent(t *testing.T) {

	a := NewSuite("twice")
	b := NewSuite("twice")

	assert.Same(t, a, b)
}
