//go:build whispercpp

package whispercpp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	whisperlib "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"nba-voice-stats/internal/infra/audio"
)

// Transcriber loads the model once and runs one inference per file.
type Transcriber struct {
	model    whisperlib.Model
	language string
	logger   *slog.Logger
}

func New(modelPath, language string, logger *slog.Logger) (*Transcriber, error) {
	if modelPath == "" {
		return nil, errors.New("whispercpp: model path must not be empty")
	}
	model, err := whisperlib.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("whispercpp: load model %q: %w", modelPath, err)
	}
	return &Transcriber{model: model, language: language, logger: logger}, nil
}

func (t *Transcriber) Close() error {
	if t.model != nil {
		return t.model.Close()
	}
	return nil
}

func (t *Transcriber) TranscribeFile(ctx context.Context, path string) (string, error) {
	clip, err := audio.ReadWAV(path)
	if err != nil {
		return "", fmt.Errorf("whispercpp: %w", err)
	}
	samples := Resample(clip.MonoFloat32(), clip.SampleRate, SampleRate)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	wctx, err := t.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("whispercpp: create context: %w", err)
	}

	if t.language != "" {
		if err := wctx.SetLanguage(t.language); err != nil {
			t.logger.Warn("whispercpp: failed to set language, using default", "language", t.language, "error", err)
		}
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return "", fmt.Errorf("whispercpp: process audio: %w", err)
	}

	var parts []string
	for {
		segment, err := wctx.NextSegment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("whispercpp: read segment: %w", err)
		}
		if text := strings.TrimSpace(segment.Text); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}
