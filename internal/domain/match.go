package domain

// MatchResult is the outcome of resolving a heard name against the roster.
// When Matched is false, Name equals Heard unchanged.
type MatchResult struct {
	Heard   string
	Name    string
	Score   int
	Matched bool
}
