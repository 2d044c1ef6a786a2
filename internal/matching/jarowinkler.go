package matching

import (
	"math"

	"github.com/antzucaro/matchr"
)

// JaroWinklerScorer favours names sharing a common prefix, which suits
// transcriptions that get the first name right and garble the surname.
type JaroWinklerScorer struct{}

func NewJaroWinklerScorer() *JaroWinklerScorer {
	return &JaroWinklerScorer{}
}

func (s *JaroWinklerScorer) Score(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 100
	}
	return int(math.Round(100 * matchr.JaroWinkler(na, nb, false)))
}
