package application

import (
	"context"
	"time"
)

// AudioCapture records a clip of fixed duration into a WAV file at path.
// Record blocks until the whole clip has been written.
type AudioCapture interface {
	Record(ctx context.Context, path string, format AudioFormat, duration time.Duration) error
	Name() string
}

// DefaultRecordingDuration is how long the player's name is recorded for.
const DefaultRecordingDuration = 5 * time.Second

type AudioFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

func DefaultAudioFormat() AudioFormat {
	return AudioFormat{
		SampleRate: 44100,
		Channels:   1,
		BitDepth:   16,
	}
}
