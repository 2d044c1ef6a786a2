package application

import "nba-voice-stats/internal/domain"

// DefaultMatchThreshold is the score a candidate must exceed to be accepted.
const DefaultMatchThreshold = 80

// SimilarityScorer rates how alike two strings are on a 0..100 scale.
type SimilarityScorer interface {
	Score(a, b string) int
}

// NameResolver maps a transcribed name onto the closest roster entry.
type NameResolver struct {
	scorer    SimilarityScorer
	threshold int
}

// NewNameResolver accepts matches scoring strictly above threshold.
func NewNameResolver(scorer SimilarityScorer, threshold int) *NameResolver {
	return &NameResolver{scorer: scorer, threshold: threshold}
}

// Resolve picks the candidate scoring highest against heard. Ties keep the
// earliest candidate. The match is accepted only when the best score is
// strictly greater than the threshold; otherwise the result carries heard
// unchanged as its name.
func (r *NameResolver) Resolve(heard string, candidates []string) domain.MatchResult {
	result := domain.MatchResult{Heard: heard, Name: heard}

	bestIdx, bestScore := -1, -1
	for i, candidate := range candidates {
		score := r.scorer.Score(heard, candidate)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 {
		return result
	}

	result.Score = bestScore
	if bestScore > r.threshold {
		result.Name = candidates[bestIdx]
		result.Matched = true
	}
	return result
}
