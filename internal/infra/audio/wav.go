package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"nba-voice-stats/internal/application"
)

var ErrInvalidWAV = errors.New("invalid WAV file")

const pcmFormat = 1

// Clip is decoded PCM audio with interleaved samples.
type Clip struct {
	Samples    []int
	SampleRate int
	Channels   int
	BitDepth   int
}

// Duration in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Samples)/c.Channels) / float64(c.SampleRate)
}

// Int16 rescales the samples to signed 16-bit.
func (c *Clip) Int16() []int16 {
	out := make([]int16, len(c.Samples))
	for i, s := range c.Samples {
		switch {
		case c.BitDepth == 8:
			s = (s - 128) << 8
		case c.BitDepth > 16:
			s >>= c.BitDepth - 16
		}
		out[i] = int16(s)
	}
	return out
}

// MonoFloat32 down-mixes to one channel normalised to [-1, 1].
func (c *Clip) MonoFloat32() []float32 {
	channels := max(c.Channels, 1)
	pcm := c.Int16()
	frames := len(pcm) / channels
	mono := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += float32(pcm[i*channels+ch]) / 32768.0
		}
		mono[i] = sum / float32(channels)
	}
	return mono
}

// WriteWAV encodes interleaved 16-bit samples as an uncompressed WAV file.
func WriteWAV(path string, samples []int16, format application.AudioFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := EncodeWAV(f, samples, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func EncodeWAV(w io.WriteSeeker, samples []int16, format application.AudioFormat) error {
	bitDepth := format.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, format.SampleRate, bitDepth, format.Channels, pcmFormat)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding WAV: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising WAV: %w", err)
	}
	return nil
}

func ReadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return DecodeWAV(f)
}

func DecodeWAVBytes(data []byte) (*Clip, error) {
	return DecodeWAV(bytes.NewReader(data))
}

func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}

	clip := &Clip{
		Samples:    buf.Data,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}

	// Streamed WAVs declare 0xFFFFFFFF as the data size, which the decoder
	// reads as an empty buffer. Decode the trailing payload ourselves.
	if len(clip.Samples) == 0 {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
		}
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
		}
		clip.Samples = decodePCM(dataChunk(raw), clip.BitDepth)
	}

	if len(clip.Samples) == 0 {
		return nil, fmt.Errorf("%w: no audio samples", ErrInvalidWAV)
	}
	return clip, nil
}

const streamedSize = 0xFFFFFFFF

// dataChunk returns the payload of the first data chunk. An unknown
// (streamed) size runs to the end of raw.
func dataChunk(raw []byte) []byte {
	pos := 12
	for pos+8 <= len(raw) {
		id := string(raw[pos : pos+4])
		size := binary.LittleEndian.Uint32(raw[pos+4 : pos+8])
		body := raw[pos+8:]
		if id == "data" {
			if size != streamedSize && uint64(size) <= uint64(len(body)) {
				body = body[:size]
			}
			return body
		}
		if size == streamedSize || uint64(size) > uint64(len(body)) {
			return nil
		}
		pos += 8 + int(size) + int(size%2)
	}
	return nil
}

func decodePCM(payload []byte, bitDepth int) []int {
	width := bitDepth / 8
	if width < 1 || width > 4 {
		return nil
	}

	samples := make([]int, 0, len(payload)/width)
	for i := 0; i+width <= len(payload); i += width {
		b := payload[i : i+width]
		switch width {
		case 1:
			samples = append(samples, int(b[0]))
		case 2:
			samples = append(samples, int(int16(binary.LittleEndian.Uint16(b))))
		case 3:
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			samples = append(samples, int(v<<8>>8))
		case 4:
			samples = append(samples, int(int32(binary.LittleEndian.Uint32(b))))
		}
	}
	return samples
}
