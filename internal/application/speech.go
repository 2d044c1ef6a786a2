package application

import (
	"context"
	"fmt"
)

type Transcriber interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
}

type SpeechOutput interface {
	Speak(ctx context.Context, text string) error
}

// NoopTranscriber is used when the heard name is supplied directly.
// It returns an error if asked to transcribe a file.
type NoopTranscriber struct{}

func (n *NoopTranscriber) TranscribeFile(_ context.Context, path string) (string, error) {
	return "", fmt.Errorf("transcription not configured: cannot transcribe %s", path)
}
