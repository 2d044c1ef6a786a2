package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nba-voice-stats/internal/application"
)

// FileCapture stands in for a microphone by copying a pre-recorded WAV clip
// to the recording path.
type FileCapture struct {
	source string
}

func NewFileCapture(source string) *FileCapture {
	return &FileCapture{source: source}
}

func (f *FileCapture) Name() string {
	return "file"
}

func (f *FileCapture) Record(ctx context.Context, path string, _ application.AudioFormat, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(f.source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.source, err)
	}

	if _, err := DecodeWAVBytes(data); err != nil {
		return fmt.Errorf("%s: %w", f.source, err)
	}

	if same, _ := samePath(f.source, path); same {
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
