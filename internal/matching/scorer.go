package matching

import "fmt"

const (
	ScorerTokenSort   = "token_sort"
	ScorerJaroWinkler = "jaro_winkler"
)

type Scorer interface {
	Score(a, b string) int
}

// NewScorer returns the scorer registered under name. An empty name selects
// the token sort scorer.
func NewScorer(name string) (Scorer, error) {
	switch name {
	case "", ScorerTokenSort:
		return NewTokenSortScorer(), nil
	case ScorerJaroWinkler:
		return NewJaroWinklerScorer(), nil
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
}
