package unitcheck

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// A Test represents an actual test case.
type Test struct {
	id          string
	suite       string
	Name        string
	Description string
	Author      string
	Tags        []string
	Setup       SetupFunction
	Function    TestFunction
}

// CaseID returns the identifier used in reports, as `name (suite)`.
func (t Test) CaseID() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.suite)
}

// MatchTags matches all tags if --match-all is set otherwise matches any tag.
func (t Test) MatchTags(tags []string, matchAll bool) bool {

	if !matchAll {
		return t.matchAnyTags(tags)
	}

	return t.matchAllTags(tags)
}

// matchAllTags returns true if all incoming tags are matching minus exclusions.
func (t Test) matchAllTags(tags []string) bool {

	if len(tags) == 0 {
		return true
	}

	for _, incoming := range tags {
		if strings.HasPrefix(incoming, "~") {
			if t.hasTag(strings.TrimPrefix(incoming, "~")) {
				return false
			}

			continue
		}

		if !t.hasTag(incoming) {
			return false
		}
	}

	return true
}

// matchAnyTags returns true if any incoming tags are matching.
func (t Test) matchAnyTags(tags []string) bool {

	if len(tags) == 0 {
		return true
	}

	for _, incoming := range tags {
		if t.hasTag(incoming) {
			return true
		}
	}

	return false
}

// hasTag returns true if the test carries the tag.
func (t Test) hasTag(tag string) bool {
	for _, testTag := range t.Tags {
		if tag == testTag {
			return true
		}
	}

	return false
}

func (t Test) String() string {
	return fmt.Sprintf(`id         : %s
name       : %s
desc       : %s
author     : %s
tags       : %s
`, t.id, t.Name, t.Description, t.Author, strings.Join(t.Tags, ", "))
}

// makeTestID derives a short stable identifier from the suite and test names.
func makeTestID(suite string, name string) string {

	h := fnv.New32a()
	h.Write([]byte(suite)) // nolint
	h.Write([]byte{0})     // nolint
	h.Write([]byte(name))  // nolint

	return fmt.Sprintf("%08x", h.Sum32())
}
