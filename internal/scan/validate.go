package scan

import (
	"fmt"
	"os"
)

// Validate checks that every candidate still exists as a regular file and
// is both readable and writable. It probes by opening, so the permissions
// that matter are the ones the process actually has. Nothing is modified.
//
// The returned problems are human-readable, one per failing candidate.
func Validate(candidates []Candidate) (ok bool, problems []string) {
	for _, c := range candidates {
		info, err := os.Stat(c.Path)

		switch {
		case os.IsNotExist(err):
			problems = append(problems, fmt.Sprintf("file not found: %s", c.Path))
			continue
		case err != nil:
			problems = append(problems, fmt.Sprintf("cannot stat: %s", c.Path))
			continue
		case !info.Mode().IsRegular():
			problems = append(problems, fmt.Sprintf("not a regular file: %s", c.Path))
			continue
		}

		if !readable(c.Path) {
			problems = append(problems, fmt.Sprintf("cannot read: %s", c.Path))
			continue
		}

		if !writable(c.Path) {
			problems = append(problems, fmt.Sprintf("cannot write: %s", c.Path))
		}
	}

	return len(problems) == 0, problems
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}

	f.Close()

	return true
}

func writable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}

	f.Close()

	return true
}
