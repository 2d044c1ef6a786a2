package domain

import "strings"

// Column names used by the per-game stats table.
const (
	ColumnPlayer       = "Player"
	ColumnGames        = "G"
	ColumnMinutes      = "MP"
	ColumnFieldGoalPct = "FG%"
	ColumnEffectiveFG  = "eFG%"
	ColumnRebounds     = "TRB"
	ColumnAssists      = "AST"
	ColumnSteals       = "STL"
	ColumnBlocks       = "BLK"
	ColumnPoints       = "PTS"
)

// PlayerRow is one line of the stats table. Values hold the text exactly as
// it appeared in the source table, keyed by column name.
type PlayerRow struct {
	Player string
	Values map[string]string
}

// Value returns the stored value for col. Missing columns, empty cells and
// NaN markers are reported as unavailable.
func (r PlayerRow) Value(col string) (string, bool) {
	if col == ColumnPlayer {
		return r.Player, r.Player != ""
	}
	v, ok := r.Values[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "nan") {
		return "", false
	}
	return v, true
}

// StatsTable is the season table loaded once per run. It is not mutated after
// construction.
type StatsTable struct {
	Columns []string
	Rows    []PlayerRow
}

// Roster returns the distinct non-empty player names in first occurrence
// order.
func (t *StatsTable) Roster() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool, len(t.Rows))
	names := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Player == "" || seen[row.Player] {
			continue
		}
		seen[row.Player] = true
		names = append(names, row.Player)
	}
	return names
}

// Record returns the row's cells in column order, with the player name in
// the Player column.
func (t *StatsTable) Record(row PlayerRow) []string {
	record := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		if col == ColumnPlayer {
			record[i] = row.Player
			continue
		}
		record[i] = row.Values[col]
	}
	return record
}

// NewPlayerRow builds a row from a record aligned with columns. It returns
// false when the record carries no player name.
func NewPlayerRow(columns, record []string) (PlayerRow, bool) {
	row := PlayerRow{Values: make(map[string]string, len(columns))}
	for i, col := range columns {
		if i >= len(record) {
			break
		}
		cell := strings.TrimSpace(record[i])
		if col == ColumnPlayer {
			row.Player = cell
			continue
		}
		row.Values[col] = cell
	}
	if row.Player == "" || strings.EqualFold(row.Player, "nan") {
		return PlayerRow{}, false
	}
	return row, true
}
