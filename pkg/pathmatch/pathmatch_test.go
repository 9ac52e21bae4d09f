package pathmatch_test

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/URDev4ever/lockstr/pkg/pathmatch"
)

// Case is a single test case from a YAML golden file.
type Case struct {
	Pattern     string `yaml:"pattern"`
	Path        string `yaml:"path"`
	Match       bool   `yaml:"match"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of test cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadSpecs(t *testing.T) map[string][]Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	specs := make(map[string][]Group)

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var groups []Group
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		specs[filepath.Base(f)] = groups
	}

	return specs
}

// forEachCase iterates file→group→case from the golden files and calls fn per case.
func forEachCase(t *testing.T, fn func(t *testing.T, tc Case)) {
	t.Helper()

	forEachGroup(t, func(t *testing.T, cases []Case) {
		t.Helper()

		for i, tc := range cases {
			tc := tc

			desc := tc.Description
			if desc == "" {
				desc = fmt.Sprintf("case_%d", i)
			}

			t.Run(desc, func(t *testing.T) {
				t.Parallel()
				fn(t, tc)
			})
		}
	})
}

// forEachGroup iterates file→group from the golden files and calls fn per group.
func forEachGroup(t *testing.T, fn func(t *testing.T, cases []Case)) {
	t.Helper()

	for file, groups := range loadSpecs(t) {
		groups := groups

		t.Run(file, func(t *testing.T) {
			t.Parallel()

			for _, g := range groups {
				g := g

				t.Run(g.Name, func(t *testing.T) {
					t.Parallel()
					fn(t, g.Cases)
				})
			}
		})
	}
}

// TestMatch runs all golden test cases against pathmatch.Match.
func TestMatch(t *testing.T) {
	t.Parallel()

	forEachCase(t, func(t *testing.T, tc Case) {
		t.Helper()

		got, err := pathmatch.Match(tc.Pattern, tc.Path)
		if err != nil {
			t.Fatalf("Match(%q, %q) error: %v", tc.Pattern, tc.Path, err)
		}

		if got != tc.Match {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.Pattern, tc.Path, got, tc.Match)
		}
	})
}

// TestMatcher tests the pre-compiled Matcher API.
func TestMatcher(t *testing.T) {
	t.Parallel()

	forEachGroup(t, func(t *testing.T, cases []Case) {
		t.Helper()

		// Group cases by pattern for batch testing.
		byPattern := make(map[string][]Case)

		for _, tc := range cases {
			byPattern[tc.Pattern] = append(byPattern[tc.Pattern], tc)
		}

		for pattern, pCases := range byPattern {
			matcher, err := pathmatch.NewMatcher([]string{pattern})
			if err != nil {
				t.Fatalf("NewMatcher(%q) error: %v", pattern, err)
			}

			for _, tc := range pCases {
				got := matcher.MatchAny(tc.Path)
				if got != tc.Match {
					t.Errorf("Matcher(%q).MatchAny(%q) = %v, want %v",
						pattern, tc.Path, got, tc.Match)
				}
			}
		}
	})
}

// TestStdlibParity cross-checks the implementation against path.Match,
// which shares the separator-aware semantics for every construct except
// class negation: the stdlib spells it [^...] only and lets it match the
// separator. Negated cases are skipped.
func TestStdlibParity(t *testing.T) {
	t.Parallel()

	forEachCase(t, func(t *testing.T, tc Case) {
		t.Helper()

		if strings.Contains(tc.Pattern, "[!") || strings.Contains(tc.Pattern, "[^") {
			t.Skip("class negation dialect differs from the stdlib")
		}

		want, err := path.Match(tc.Pattern, tc.Path)
		if err != nil {
			t.Fatalf("path.Match(%q, %q) error: %v", tc.Pattern, tc.Path, err)
		}

		if want != tc.Match {
			t.Errorf("path.Match disagrees with golden: stdlib=%v, golden=%v for pattern=%q path=%q",
				want, tc.Match, tc.Pattern, tc.Path)
		}

		got, err := pathmatch.Match(tc.Pattern, tc.Path)
		if err != nil {
			t.Fatalf("Match(%q, %q) error: %v", tc.Pattern, tc.Path, err)
		}

		if got != want {
			t.Errorf("Match(%q, %q) = %v, but path.Match says %v",
				tc.Pattern, tc.Path, got, want)
		}
	})
}

func TestMatchErrors(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"[", "data[0-9", `trailing\`} {
		if _, err := pathmatch.Match(pattern, "x"); err == nil {
			t.Errorf("Match(%q) expected error", pattern)
		}
	}
}

func TestNewMatcherRejectsMalformedPattern(t *testing.T) {
	t.Parallel()

	if _, err := pathmatch.NewMatcher([]string{"*.log", "["}); err == nil {
		t.Fatal("want error for malformed pattern")
	}
}

func TestMatcherMultiplePatterns(t *testing.T) {
	t.Parallel()

	matcher, err := pathmatch.NewMatcher([]string{"*.log", "build/*"})
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	for p, want := range map[string]bool{
		"app.log":     true,
		"build/a.out": true,
		"src/a.out":   false,
	} {
		if got := matcher.MatchAny(p); got != want {
			t.Errorf("MatchAny(%q) = %v, want %v", p, got, want)
		}
	}
}
