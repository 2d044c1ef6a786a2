//go:build portaudio
// +build portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gordonklaus/portaudio"

	"nba-voice-stats/internal/application"
)

const framesPerBuffer = 1024

// MicrophoneCapture records from the default input device for a fixed
// duration.
type MicrophoneCapture struct {
	logger *slog.Logger
}

func NewMicrophoneCapture(logger *slog.Logger) *MicrophoneCapture {
	return &MicrophoneCapture{logger: logger}
}

func (m *MicrophoneCapture) Name() string {
	return "microphone"
}

func (m *MicrophoneCapture) Record(ctx context.Context, path string, format application.AudioFormat, duration time.Duration) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, framesPerBuffer*format.Channels)

	stream, err := portaudio.OpenDefaultStream(
		format.Channels,
		0,
		float64(format.SampleRate),
		framesPerBuffer,
		buffer,
	)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}

	reads := int(float64(format.SampleRate) / framesPerBuffer * duration.Seconds())
	samples := make([]int16, 0, reads*len(buffer))

	m.logger.Info("microphone recording", "sampleRate", format.SampleRate, "seconds", duration.Seconds())

	for i := 0; i < reads; i++ {
		if err := ctx.Err(); err != nil {
			stream.Stop()
			return err
		}
		if err := stream.Read(); err != nil {
			stream.Stop()
			return fmt.Errorf("reading from stream: %w", err)
		}
		samples = append(samples, buffer...)
	}

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("stopping stream: %w", err)
	}

	m.logger.Info("microphone recording complete", "samples", len(samples))
	return WriteWAV(path, samples, format)
}

// Player plays decoded clips on the default output device.
type Player struct{}

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) Play(ctx context.Context, clip *Clip) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	channels := max(clip.Channels, 1)
	out := make([]int16, framesPerBuffer*channels)

	stream, err := portaudio.OpenDefaultStream(0, channels, float64(clip.SampleRate), framesPerBuffer, out)
	if err != nil {
		return fmt.Errorf("opening output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("starting output stream: %w", err)
	}
	defer stream.Stop()

	pcm := clip.Int16()
	for offset := 0; offset < len(pcm); offset += len(out) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := copy(out, pcm[offset:])
		clear(out[n:])
		if err := stream.Write(); err != nil {
			return fmt.Errorf("writing to stream: %w", err)
		}
	}
	return nil
}
