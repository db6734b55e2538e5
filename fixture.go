package unitcheck

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestDir creates a scratch directory unique to the test and returns
// its path with a Cleanup removing it. Typical use is from a Setup
// function, calling the Cleanup in the returned teardown.
func CreateTestDir(t TestInfo) (string, Cleanup, error) {

	dir, err := os.MkdirTemp("", fmt.Sprintf("unitcheck-%s-", t.TestID()))
	if err != nil {
		return "", nil, fmt.Errorf("unable to create test directory: %s", err)
	}

	return dir, func() error { return os.RemoveAll(dir) }, nil
}

// CreateTestFile creates a file with the given content in a scratch
// directory unique to the test. It returns the file path and a Cleanup
// removing the directory.
func CreateTestFile(t TestInfo, name string, content []byte) (string, Cleanup, error) {

	dir, clean, err := CreateTestDir(t)
	if err != nil {
		return "", nil, err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		clean() // nolint
		return "", nil, fmt.Errorf("unable to create test file: %s", err)
	}

	return path, clean, nil
}
