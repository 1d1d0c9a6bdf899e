package diagnostic

import "github.com/hbollon/go-edlib"

// Suggest returns the entry in candidates most similar to name under
// Jaro-Winkler similarity, provided the score clears minScore. It powers
// the optional suggestion field on Diagnostic for cases like an unknown
// plugin name or a mistyped attribute.
func Suggest(name string, candidates []string, minScore float64) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score, err := edlib.StringsSimilarity(name, c, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if bestScore < minScore {
		return "", false
	}
	return best, true
}
