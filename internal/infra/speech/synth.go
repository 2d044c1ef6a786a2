package speech

import (
	"context"
	"fmt"

	"nba-voice-stats/internal/infra/audio"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Player interface {
	Play(ctx context.Context, clip *audio.Clip) error
}

// SynthSpeaker renders text to WAV with a remote synthesizer and plays the
// result locally.
type SynthSpeaker struct {
	synth  Synthesizer
	player Player
}

func NewSynthSpeaker(synth Synthesizer, player Player) *SynthSpeaker {
	return &SynthSpeaker{synth: synth, player: player}
}

func (s *SynthSpeaker) Speak(ctx context.Context, text string) error {
	wav, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return fmt.Errorf("synthesizing: %w", err)
	}

	clip, err := audio.DecodeWAVBytes(wav)
	if err != nil {
		return fmt.Errorf("decoding speech: %w", err)
	}

	if err := s.player.Play(ctx, clip); err != nil {
		return fmt.Errorf("playing speech: %w", err)
	}
	return nil
}
