package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nba-voice-stats/internal/domain"
)

// RecordingConfig describes the clip captured for the heard name.
type RecordingConfig struct {
	Path     string
	Format   AudioFormat
	Duration time.Duration
}

// Assistant runs one lookup: table, heard name, resolution, spoken answer.
type Assistant struct {
	stats     *StatsLoader
	audio     AudioCapture
	stt       Transcriber
	resolver  *NameResolver
	speech    SpeechOutput
	notifier  Notifier
	recording RecordingConfig
	logger    *slog.Logger
}

func NewAssistant(
	stats *StatsLoader,
	audio AudioCapture,
	stt Transcriber,
	resolver *NameResolver,
	speech SpeechOutput,
	notifier Notifier,
	recording RecordingConfig,
	logger *slog.Logger,
) *Assistant {
	return &Assistant{
		stats:     stats,
		audio:     audio,
		stt:       stt,
		resolver:  resolver,
		speech:    speech,
		notifier:  notifier,
		recording: recording,
		logger:    logger,
	}
}

// Run performs a full voice cycle and returns the utterance that was spoken.
func (a *Assistant) Run(ctx context.Context) (string, error) {
	table, roster, err := a.loadTable(ctx)
	if err != nil {
		return "", err
	}

	heard, err := a.listen(ctx)
	if err != nil {
		return "", err
	}

	return a.Answer(ctx, table, roster, heard)
}

// RunWithName skips capture and transcription and answers for name.
func (a *Assistant) RunWithName(ctx context.Context, name string) (string, error) {
	table, roster, err := a.loadTable(ctx)
	if err != nil {
		return "", err
	}

	a.logger.Info("received player name directly", "name", name)
	return a.Answer(ctx, table, roster, name)
}

func (a *Assistant) loadTable(ctx context.Context) (*domain.StatsTable, []string, error) {
	table, err := a.stats.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquiring stats table: %w", err)
	}
	roster := table.Roster()
	a.logger.Info("roster ready", "players", len(roster))
	return table, roster, nil
}

func (a *Assistant) listen(ctx context.Context) (string, error) {
	a.logger.Info("recording audio",
		"source", a.audio.Name(),
		"path", a.recording.Path,
		"duration", a.recording.Duration,
	)
	if err := a.audio.Record(ctx, a.recording.Path, a.recording.Format, a.recording.Duration); err != nil {
		return "", fmt.Errorf("recording audio: %w", err)
	}

	a.logger.Info("transcribing audio", "path", a.recording.Path)
	text, err := a.stt.TranscribeFile(ctx, a.recording.Path)
	if err != nil {
		return "", fmt.Errorf("transcribing: %w", err)
	}

	a.logger.Info("player name recognised", "text", text)
	return text, nil
}

// Answer resolves heard against the roster, looks the player up and speaks
// either the stats or the not-found message.
func (a *Assistant) Answer(ctx context.Context, table *domain.StatsTable, roster []string, heard string) (string, error) {
	match := a.resolver.Resolve(heard, roster)
	a.logger.Info("resolved player name",
		"heard", match.Heard,
		"name", match.Name,
		"score", match.Score,
		"matched", match.Matched,
	)

	var utterance, title string
	row, found := LookupStats(match.Name, table)
	if found {
		a.logger.Info("stats found", "player", row.Player)
		utterance = FormatStats(row)
		title = row.Player
	} else {
		a.logger.Warn("no stats found", "heard", heard, "best_match", match.Name)
		utterance = NotFoundMessage(heard)
		title = NotFoundTitle(heard)
	}

	if err := a.speech.Speak(ctx, utterance); err != nil {
		return utterance, fmt.Errorf("speaking: %w", err)
	}

	if err := a.notifier.Notify(ctx, title, utterance); err != nil {
		a.logger.Error("notifying result", "error", err)
	}

	return utterance, nil
}
