package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"nba-voice-stats/internal/application"
)

func TestStatsLoader_CacheShortCircuitsFetch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := &mockSource{table: seasonTable()}
	cache := &mockCache{table: seasonTable()}

	loader := application.NewStatsLoader(source, cache, "http://stats.test", logger)

	first, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("second load: %v", err)
	}

	if source.calls != 0 {
		t.Errorf("fetch calls: got %d, want 0", source.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two cached loads should yield identical tables")
	}
}

func TestStatsLoader_FetchesAndSavesWhenCacheEmpty(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := &mockSource{table: seasonTable()}
	cache := &mockCache{}

	loader := application.NewStatsLoader(source, cache, "http://stats.test", logger)

	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if source.calls != 1 {
		t.Errorf("fetch calls: got %d, want 1", source.calls)
	}
	if cache.saves != 1 {
		t.Errorf("cache saves: got %d, want 1", cache.saves)
	}
}

func TestStatsLoader_RefreshIgnoresCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := &mockSource{table: seasonTable()}
	cache := &mockCache{table: seasonTable()}

	loader := application.NewStatsLoader(source, cache, "http://stats.test", logger).WithRefresh(true)

	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if source.calls != 1 || cache.saves != 1 {
		t.Errorf("fetch/save calls: got %d/%d, want 1/1", source.calls, cache.saves)
	}
}

func TestStatsLoader_FetchErrorLeavesCacheUntouched(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := &mockSource{err: errors.New("table not found")}
	cache := &mockCache{}

	loader := application.NewStatsLoader(source, cache, "http://stats.test", logger)

	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if cache.saves != 0 || cache.table != nil {
		t.Error("cache must stay empty after a failed fetch")
	}
}
