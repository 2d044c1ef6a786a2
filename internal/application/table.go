package application

import (
	"context"
	"fmt"
	"log/slog"

	"nba-voice-stats/internal/domain"
)

// StatsLoader acquires the season table, preferring the cache. A cached table
// short-circuits the network fetch for the whole run.
type StatsLoader struct {
	source  TableSource
	cache   TableCache
	url     string
	refresh bool
	logger  *slog.Logger
}

func NewStatsLoader(source TableSource, cache TableCache, url string, logger *slog.Logger) *StatsLoader {
	return &StatsLoader{
		source: source,
		cache:  cache,
		url:    url,
		logger: logger,
	}
}

// WithRefresh makes Load skip the cache lookup and overwrite it after a
// successful fetch.
func (l *StatsLoader) WithRefresh(refresh bool) *StatsLoader {
	l.refresh = refresh
	return l
}

func (l *StatsLoader) Load(ctx context.Context) (*domain.StatsTable, error) {
	if !l.refresh {
		table, ok, err := l.cache.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading cached stats: %w", err)
		}
		if ok {
			l.logger.Info("stats loaded from cache", "rows", len(table.Rows))
			return table, nil
		}
	}

	l.logger.Info("fetching player stats", "url", l.url)
	table, err := l.source.Fetch(ctx, l.url)
	if err != nil {
		return nil, fmt.Errorf("fetching stats: %w", err)
	}

	if err := l.cache.Save(ctx, table); err != nil {
		return nil, fmt.Errorf("saving stats cache: %w", err)
	}
	l.logger.Info("stats saved to cache", "rows", len(table.Rows))

	return table, nil
}
