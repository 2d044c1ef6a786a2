//go:build !whispercpp

package whispercpp

import (
	"context"
	"errors"
	"log/slog"
)

var errUnavailable = errors.New("whisper.cpp transcription not available: rebuild with -tags whispercpp")

// Transcriber stub when whisper.cpp is not linked in
type Transcriber struct{}

func New(_, _ string, _ *slog.Logger) (*Transcriber, error) {
	return nil, errUnavailable
}

func (t *Transcriber) Close() error { return nil }

func (t *Transcriber) TranscribeFile(_ context.Context, _ string) (string, error) {
	return "", errUnavailable
}
