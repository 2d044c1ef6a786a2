package application

import (
	"context"

	"nba-voice-stats/internal/domain"
)

// TableSource fetches and parses the season table from the network.
type TableSource interface {
	Fetch(ctx context.Context, url string) (*domain.StatsTable, error)
}

// TableCache persists the parsed table between runs. Load reports false when
// nothing is cached.
type TableCache interface {
	Load(ctx context.Context) (*domain.StatsTable, bool, error)
	Save(ctx context.Context, table *domain.StatsTable) error
}
