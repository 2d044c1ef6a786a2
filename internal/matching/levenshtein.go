package matching

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// TokenSortScorer compares names by edit distance, both as spoken and with
// their words sorted, and keeps the higher of the two ratios. Sorting makes
// "James LeBron" score the same as "LeBron James".
type TokenSortScorer struct{}

func NewTokenSortScorer() *TokenSortScorer {
	return &TokenSortScorer{}
}

func (s *TokenSortScorer) Score(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	score := ratio(na, nb)
	if sorted := ratio(sortTokens(na), sortTokens(nb)); sorted > score {
		score = sorted
	}
	return score
}

// ratio maps the Levenshtein distance onto 0..100 relative to the longer
// string.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	dist := matchr.Levenshtein(a, b)
	if dist >= longest {
		return 0
	}
	return int(math.Round(100 * float64(longest-dist) / float64(longest)))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
