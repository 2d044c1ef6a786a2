package application_test

import (
	"testing"

	"nba-voice-stats/internal/application"
	"nba-voice-stats/internal/matching"
)

// fixedScorer returns a preset score per candidate and 0 otherwise.
type fixedScorer map[string]int

func (f fixedScorer) Score(_, candidate string) int { return f[candidate] }

func TestNameResolver_Resolve(t *testing.T) {
	resolver := application.NewNameResolver(matching.NewTokenSortScorer(), application.DefaultMatchThreshold)

	tests := []struct {
		name        string
		heard       string
		roster      []string
		wantName    string
		wantMatched bool
	}{
		{
			name:        "exact match ignoring case",
			heard:       "lebron james",
			roster:      []string{"LeBron James", "Stephen Curry"},
			wantName:    "LeBron James",
			wantMatched: true,
		},
		{
			name:        "gibberish rejected",
			heard:       "random gibberish",
			roster:      []string{"LeBron James"},
			wantName:    "random gibberish",
			wantMatched: false,
		},
		{
			name:        "empty roster",
			heard:       "stephen curry",
			roster:      nil,
			wantName:    "stephen curry",
			wantMatched: false,
		},
		{
			name:        "misheard diacritics",
			heard:       "Nikola Jokic",
			roster:      []string{"Luka Dončić", "Nikola Jokić"},
			wantName:    "Nikola Jokić",
			wantMatched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.heard, tt.roster)
			if got.Name != tt.wantName {
				t.Errorf("Name: got %q, want %q", got.Name, tt.wantName)
			}
			if got.Matched != tt.wantMatched {
				t.Errorf("Matched: got %t, want %t", got.Matched, tt.wantMatched)
			}
			if got.Heard != tt.heard {
				t.Errorf("Heard: got %q, want %q", got.Heard, tt.heard)
			}
		})
	}
}

func TestNameResolver_ThresholdIsStrict(t *testing.T) {
	tests := []struct {
		score       int
		wantMatched bool
	}{
		{79, false},
		{80, false},
		{81, true},
		{100, true},
	}

	for _, tt := range tests {
		scorer := fixedScorer{"LeBron James": tt.score}
		resolver := application.NewNameResolver(scorer, 80)

		got := resolver.Resolve("heard", []string{"LeBron James"})
		if got.Matched != tt.wantMatched {
			t.Errorf("score %d: Matched got %t, want %t", tt.score, got.Matched, tt.wantMatched)
		}
		if got.Score != tt.score {
			t.Errorf("score %d: Score got %d", tt.score, got.Score)
		}
		if !got.Matched && got.Name != "heard" {
			t.Errorf("score %d: rejected name got %q, want heard name", tt.score, got.Name)
		}
	}
}

func TestNameResolver_TieKeepsFirstCandidate(t *testing.T) {
	scorer := fixedScorer{"Jalen Williams": 90, "Jaylin Williams": 90, "Grant Williams": 85}
	resolver := application.NewNameResolver(scorer, 80)

	got := resolver.Resolve("jalen williams", []string{"Grant Williams", "Jalen Williams", "Jaylin Williams"})
	if got.Name != "Jalen Williams" {
		t.Errorf("tie: got %q, want first best candidate Jalen Williams", got.Name)
	}

	got = resolver.Resolve("jalen williams", []string{"Jaylin Williams", "Jalen Williams"})
	if got.Name != "Jaylin Williams" {
		t.Errorf("tie reversed: got %q, want Jaylin Williams", got.Name)
	}
}

func TestNameResolver_NameIsCandidateOrHeard(t *testing.T) {
	resolver := application.NewNameResolver(matching.NewTokenSortScorer(), application.DefaultMatchThreshold)
	roster := []string{"LeBron James", "Stephen Curry", "Kevin Durant", "Anthony Davis"}
	heards := []string{"lebron", "steph curry", "kevin durant", "anthony", "xyz", "", "curry stephen"}

	for _, heard := range heards {
		got := resolver.Resolve(heard, roster)
		if got.Name == heard {
			continue
		}
		found := false
		for _, c := range roster {
			if c == got.Name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Resolve(%q) = %q: neither heard nor a roster member", heard, got.Name)
		}
	}
}
