package textnorm

// Similarity scores two token sequences in [0,1] using the ratio of the
// longest common subsequence to the combined length: 2*lcs/(len(a)+len(b)).
// Identical sequences score 1.0; disjoint sequences score 0.0. Matching at
// token granularity keeps the score insensitive to the punctuation and
// casing noise Normalize already removed, while still rewarding word order.
func Similarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	common := lcsLength(a, b)
	return 2.0 * float64(common) / float64(len(a)+len(b))
}

// SimilarityText normalizes and tokenizes both strings before scoring.
func SimilarityText(a, b string) float64 {
	return Similarity(Tokens(a), Tokens(b))
}

// lcsLength computes the longest-common-subsequence length with a
// two-row table; excerpt windows are short so quadratic time is fine.
func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
