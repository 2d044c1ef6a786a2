package application

import (
	"fmt"
	"strings"

	"nba-voice-stats/internal/domain"
)

// StatLabel pairs a table column with the label it is spoken under.
type StatLabel struct {
	Column string
	Label  string
}

// StatLabels lists the spoken fields in the order they are read out.
var StatLabels = []StatLabel{
	{domain.ColumnGames, "Jogos"},
	{domain.ColumnMinutes, "Minutos Jogados"},
	{domain.ColumnFieldGoalPct, "Porcentagem de Acerto de Arremesso"},
	{domain.ColumnEffectiveFG, "Eficiência"},
	{domain.ColumnRebounds, "Rebotes"},
	{domain.ColumnAssists, "Assistências"},
	{domain.ColumnSteals, "Roubos"},
	{domain.ColumnBlocks, "Bloqueios"},
	{domain.ColumnPoints, "Pontos"},
}

// FormatStats renders the row's labelled fields. Fields the row does not
// carry are left out entirely.
func FormatStats(row domain.PlayerRow) string {
	parts := make([]string, 0, len(StatLabels))
	for _, sl := range StatLabels {
		value, ok := row.Value(sl.Column)
		if !ok {
			continue
		}
		parts = append(parts, sl.Label+": "+value)
	}
	return fmt.Sprintf("Stats for %s: %s", row.Player, strings.Join(parts, ", "))
}

// NotFoundMessage is spoken when no row matches the heard name.
func NotFoundMessage(heard string) string {
	return fmt.Sprintf("Sorry, no stats found for %s.", heard)
}

// NotFoundTitle heads the notification sent alongside NotFoundMessage.
func NotFoundTitle(heard string) string {
	return fmt.Sprintf("Not found: %s", heard)
}
