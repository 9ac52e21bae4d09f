package scan

import "path"

// PatternReport describes how one exclude pattern fared against a tree.
type PatternReport struct {
	Pattern string
	Matches int
}

// CheckPatterns counts how many candidates each pattern would exclude.
// The candidate list should come from an unfiltered scan so every pattern
// is tested against the full tree.
func CheckPatterns(candidates []Candidate, patterns []string) ([]PatternReport, error) {
	reports := make([]PatternReport, 0, len(patterns))

	for _, pattern := range patterns {
		flt, err := newFilter([]string{pattern})
		if err != nil {
			return nil, err
		}

		var matches int

		for _, c := range candidates {
			if flt.excluded(c.Rel, path.Base(c.Rel)) {
				matches++
			}
		}

		reports = append(reports, PatternReport{Pattern: pattern, Matches: matches})
	}

	return reports, nil
}
