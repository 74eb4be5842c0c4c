package iocsim

// Metric selects the scoring strategy used for one comparison run
type Metric string

const (
	// MetricJaccard scores pairs by distinct character set overlap
	MetricJaccard Metric = "jaccard"
	// MetricLevenshtein scores pairs by normalized edit distance
	MetricLevenshtein Metric = "levenshtein"
)

// ScoreFunc computes a similarity score in [0,1] for two normalized
// indicators. The bool reports whether computation completed, a false value
// is treated as non-match by the comparator (no sentinel scores).
type ScoreFunc func(a, b string) (float64, bool)

// all known metrics, dispatch is by table lookup so that an unknown
// metric is a single error path instead of a silent default
var scorers = map[Metric]ScoreFunc{
	MetricJaccard:     JaccardSimilarity,
	MetricLevenshtein: LevenshteinSimilarity,
}

// Scorer returns the scoring function registered for given metric
func Scorer(metric Metric) (ScoreFunc, bool) {
	fn, ok := scorers[metric]
	return fn, ok
}

// JaccardSimilarity treats both strings as sets of their distinct characters
// and returns |intersection| / |union|. Order and multiplicity are discarded
// so anagrams score 1.0, this is a deliberately coarse metric.
// If both strings are empty the union is empty and score is 0.0 (not NaN).
func JaccardSimilarity(a, b string) (float64, bool) {
	setA := runeSet(a)
	setB := runeSet(b)

	intersection := 0
	for r := range setA {
		if setB[r] {
			intersection++
		}
	}

	union := len(setA)
	for r := range setB {
		if !setA[r] {
			union++
		}
	}

	if union == 0 {
		return 0.0, true
	}
	return float64(intersection) / float64(union), true
}

// LevenshteinSimilarity converts edit distance to a score with
// 1 - distance/max(len(a),len(b)). Two empty strings are identical and
// score 1.0 (note: this differs from the jaccard empty convention on purpose)
func LevenshteinSimilarity(a, b string) (float64, bool) {
	ra := []rune(a)
	rb := []rune(b)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0, true
	}

	dist := levenshteinDistance(ra, rb)
	if dist < 0 {
		// distance could not be computed, collapse to non-match
		return 0.0, false
	}
	return 1.0 - float64(dist)/float64(maxLen), true
}

// LevenshteinDistance returns the minimum number of single character
// insertions, deletions and substitutions to transform a into b
func LevenshteinDistance(a, b string) int {
	return levenshteinDistance([]rune(a), []rune(b))
}

// two row DP relaxation, operands are swapped so the shorter string drives
// the inner loop which keeps auxiliary space at O(min(len(a),len(b)))
func levenshteinDistance(ra, rb []rune) int {
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
