package style

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a real path before no
// suggestion is made.
const maxSuggestDistance = 6

// Closest returns the leaf path nearest to dotted by edit distance. Ties go
// to the path that sorts first.
func Closest(dotted string) (Path, bool) {
	dotted = strings.TrimSpace(dotted)
	if dotted == "" {
		return "", false
	}

	var best Path
	bestDistance := maxSuggestDistance + 1
	for _, p := range Paths() {
		if d := levenshtein.ComputeDistance(dotted, string(p)); d < bestDistance {
			best, bestDistance = p, d
		}
	}
	return best, best != ""
}
