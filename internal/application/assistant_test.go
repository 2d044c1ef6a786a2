package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"nba-voice-stats/internal/application"
	"nba-voice-stats/internal/domain"
	"nba-voice-stats/internal/matching"
)

type mockSource struct {
	table *domain.StatsTable
	err   error
	calls int
}

func (m *mockSource) Fetch(_ context.Context, _ string) (*domain.StatsTable, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

type mockCache struct {
	table *domain.StatsTable
	saves int
}

func (m *mockCache) Load(_ context.Context) (*domain.StatsTable, bool, error) {
	if m.table == nil {
		return nil, false, nil
	}
	return m.table, true, nil
}

func (m *mockCache) Save(_ context.Context, table *domain.StatsTable) error {
	m.table = table
	m.saves++
	return nil
}

type mockCapture struct {
	paths []string
	err   error
}

func (m *mockCapture) Name() string { return "mock" }

func (m *mockCapture) Record(_ context.Context, path string, _ application.AudioFormat, _ time.Duration) error {
	m.paths = append(m.paths, path)
	return m.err
}

type mockTranscriber struct {
	text  string
	calls int
}

func (m *mockTranscriber) TranscribeFile(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.text, nil
}

type mockSpeaker struct {
	spoken []string
}

func (m *mockSpeaker) Speak(_ context.Context, text string) error {
	m.spoken = append(m.spoken, text)
	return nil
}

type failingNotifier struct {
	calls int
}

func (f *failingNotifier) Notify(_ context.Context, _, _ string) error {
	f.calls++
	return errors.New("push service down")
}

type recordingNotifier struct {
	titles   []string
	messages []string
}

func (r *recordingNotifier) Notify(_ context.Context, title, message string) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return nil
}

func seasonTable() *domain.StatsTable {
	return &domain.StatsTable{
		Columns: []string{"Player", "G", "PTS", "AST"},
		Rows: []domain.PlayerRow{
			{Player: "LeBron James", Values: map[string]string{"G": "70", "PTS": "24.4", "AST": "8.2"}},
			{Player: "Stephen Curry", Values: map[string]string{"G": "70", "PTS": "24.5", "AST": "6.0"}},
			{Player: "Nikola Jokić", Values: map[string]string{"G": "70", "PTS": "26.5", "AST": ""}},
		},
	}
}

type fixture struct {
	source      *mockSource
	cache       *mockCache
	capture     *mockCapture
	transcriber *mockTranscriber
	speaker     *mockSpeaker
	assistant   *application.Assistant
}

func newFixture(heard string, notifier application.Notifier) *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		source:      &mockSource{table: seasonTable()},
		cache:       &mockCache{},
		capture:     &mockCapture{},
		transcriber: &mockTranscriber{text: heard},
		speaker:     &mockSpeaker{},
	}

	loader := application.NewStatsLoader(f.source, f.cache, "http://stats.test/per_game", logger)
	resolver := application.NewNameResolver(matching.NewTokenSortScorer(), application.DefaultMatchThreshold)

	f.assistant = application.NewAssistant(
		loader,
		f.capture,
		f.transcriber,
		resolver,
		f.speaker,
		notifier,
		application.RecordingConfig{
			Path:     "player_name.wav",
			Format:   application.DefaultAudioFormat(),
			Duration: 5 * time.Second,
		},
		logger,
	)
	return f
}

func TestAssistant_RunSpeaksStats(t *testing.T) {
	f := newFixture("lebron james", &application.NoopNotifier{})

	utterance, err := f.assistant.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := "Stats for LeBron James: Jogos: 70, Assistências: 8.2, Pontos: 24.4"
	if utterance != want {
		t.Errorf("utterance: got %q, want %q", utterance, want)
	}
	if len(f.speaker.spoken) != 1 || f.speaker.spoken[0] != want {
		t.Errorf("spoken: got %v", f.speaker.spoken)
	}
	if len(f.capture.paths) != 1 || f.capture.paths[0] != "player_name.wav" {
		t.Errorf("capture paths: got %v", f.capture.paths)
	}
	if f.source.calls != 1 || f.cache.saves != 1 {
		t.Errorf("fetch/save calls: got %d/%d, want 1/1", f.source.calls, f.cache.saves)
	}
}

func TestAssistant_RunNotFound(t *testing.T) {
	f := newFixture("random gibberish", &application.NoopNotifier{})

	utterance, err := f.assistant.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if utterance != application.NotFoundMessage("random gibberish") {
		t.Errorf("utterance: got %q", utterance)
	}
	if !strings.Contains(f.speaker.spoken[0], "random gibberish") {
		t.Errorf("not-found message should mention heard name: %q", f.speaker.spoken[0])
	}
}

func TestAssistant_RunWithNameSkipsCapture(t *testing.T) {
	f := newFixture("unused", &application.NoopNotifier{})

	utterance, err := f.assistant.RunWithName(context.Background(), "nikola jokic")
	if err != nil {
		t.Fatalf("RunWithName error: %v", err)
	}

	if len(f.capture.paths) != 0 || f.transcriber.calls != 0 {
		t.Error("capture and transcription should be skipped")
	}
	if utterance != "Stats for Nikola Jokić: Jogos: 70, Pontos: 26.5" {
		t.Errorf("utterance: got %q", utterance)
	}
}

func TestAssistant_FetchFailureIsFatal(t *testing.T) {
	f := newFixture("lebron james", &application.NoopNotifier{})
	f.source.err = errors.New("connection refused")

	if _, err := f.assistant.Run(context.Background()); err == nil {
		t.Fatal("expected error when fetch fails")
	}
	if f.cache.saves != 0 {
		t.Error("cache must not be written after a failed fetch")
	}
	if len(f.capture.paths) != 0 {
		t.Error("recording should not start without a table")
	}
	if len(f.speaker.spoken) != 0 {
		t.Error("nothing should be spoken after a fatal error")
	}
}

func TestAssistant_CaptureFailureIsFatal(t *testing.T) {
	f := newFixture("lebron james", &application.NoopNotifier{})
	f.capture.err = errors.New("no input device")

	_, err := f.assistant.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no input device") {
		t.Fatalf("expected capture error, got %v", err)
	}
	if f.transcriber.calls != 0 {
		t.Error("transcriber should not be called after capture failure")
	}
}

func TestAssistant_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := &failingNotifier{}
	f := newFixture("stephen curry", notifier)

	if _, err := f.assistant.Run(context.Background()); err != nil {
		t.Fatalf("notifier failure should not fail the run: %v", err)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls: got %d, want 1", notifier.calls)
	}
}

func TestAssistant_NotificationTitle(t *testing.T) {
	tests := []struct {
		heard     string
		wantTitle string
	}{
		{"stephen curry", "Stephen Curry"},
		{"Zzyzx Qwerty", "Not found: Zzyzx Qwerty"},
	}

	for _, tt := range tests {
		t.Run(tt.heard, func(t *testing.T) {
			notifier := &recordingNotifier{}
			f := newFixture(tt.heard, notifier)

			utterance, err := f.assistant.Run(context.Background())
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if len(notifier.titles) != 1 {
				t.Fatalf("notifications: got %d, want 1", len(notifier.titles))
			}
			if notifier.titles[0] != tt.wantTitle {
				t.Errorf("title: got %q, want %q", notifier.titles[0], tt.wantTitle)
			}
			if notifier.messages[0] != utterance {
				t.Errorf("message: got %q, want the spoken utterance %q", notifier.messages[0], utterance)
			}
		})
	}
}
