//go:build !portaudio
// +build !portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nba-voice-stats/internal/application"
)

// MicrophoneCapture stub when portaudio is not available
type MicrophoneCapture struct {
	logger *slog.Logger
}

func NewMicrophoneCapture(logger *slog.Logger) *MicrophoneCapture {
	return &MicrophoneCapture{logger: logger}
}

func (m *MicrophoneCapture) Name() string {
	return "microphone"
}

func (m *MicrophoneCapture) Record(_ context.Context, _ string, _ application.AudioFormat, _ time.Duration) error {
	return fmt.Errorf("microphone capture not available: rebuild with -tags portaudio")
}

// Player stub when portaudio is not available
type Player struct{}

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) Play(_ context.Context, _ *Clip) error {
	return fmt.Errorf("audio playback not available: rebuild with -tags portaudio")
}
