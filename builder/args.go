package builder

import (
	"github.com/google/shlex"
)

// SplitArgs splits a user-supplied bundler-flags string into argv form,
// honoring shell quoting.
func SplitArgs(line string) ([]string, error) {
	if line == "" {
		return nil, nil
	}
	return shlex.Split(line)
}
