package application

import (
	"strings"

	"nba-voice-stats/internal/domain"
)

// LookupStats returns the first row, in table order, whose player name
// contains name case-insensitively. The comparison is a literal substring
// test. An empty name matches nothing.
func LookupStats(name string, table *domain.StatsTable) (domain.PlayerRow, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" || table == nil {
		return domain.PlayerRow{}, false
	}

	for _, row := range table.Rows {
		if row.Player == "" {
			continue
		}
		if strings.Contains(strings.ToLower(row.Player), needle) {
			return row, true
		}
	}
	return domain.PlayerRow{}, false
}
