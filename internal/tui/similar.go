package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarName finds the existing name closest to name, case-insensitively,
// when it is within maxDistance edits. A maxDistance of zero disables the check.
func similarName(name string, existing []string, maxDistance int) (string, bool) {
	if maxDistance <= 0 {
		return "", false
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	best, bestDist := "", maxDistance+1
	for _, other := range existing {
		candidate := strings.ToLower(strings.TrimSpace(other))
		if candidate == "" {
			continue
		}
		if d := levenshtein.ComputeDistance(needle, candidate); d < bestDist {
			best, bestDist = other, d
		}
	}
	return best, bestDist <= maxDistance
}
