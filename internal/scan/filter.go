package scan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/URDev4ever/lockstr/pkg/pathmatch"
)

// filter drops candidates whose relative path or base name matches any
// exclude pattern.
type filter struct {
	matcher *pathmatch.Matcher
}

// newFilter compiles the patterns up front so a malformed pattern fails
// the scan instead of silently matching nothing.
func newFilter(patterns []string) (*filter, error) {
	matcher, err := pathmatch.NewMatcher(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern: %w", err)
	}

	return &filter{matcher: matcher}, nil
}

// excluded matches the slash-form relative path and the base name against
// every pattern. Matching the base name lets "*.log" exclude at any depth.
func (f *filter) excluded(rel, base string) bool {
	return f.matcher.MatchAny(rel) || f.matcher.MatchAny(base)
}

// LoadPatterns reads glob patterns from a JSONC file holding a single
// string array. Comments and trailing commas are tolerated.
func LoadPatterns(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading patterns from %q: %w", file, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns from %q: %w", file, err)
	}

	return patterns, nil
}
