package textutil

import "github.com/agnivade/levenshtein"

// SimilarityRatio computes a normalized Levenshtein similarity between two
// strings on a 0-100 scale. Identical strings score 100; strings sharing no
// characters score 0. Comparison is case-sensitive; callers lowercase first.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return (1 - float64(distance)/float64(longest)) * 100
}
