// Package speech reads the final utterance aloud.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultCommands are tried in order when no command is configured.
var DefaultCommands = []string{"espeak-ng", "espeak", "say"}

// CommandSpeaker hands the text to a system text-to-speech binary and waits
// for it to finish.
type CommandSpeaker struct {
	name string
	args []string
}

// NewCommandSpeaker parses command, e.g. "espeak-ng -v pt-br". An empty
// command picks the first of DefaultCommands found on PATH.
func NewCommandSpeaker(command string) (*CommandSpeaker, error) {
	fields := strings.Fields(command)
	if len(fields) > 0 {
		return &CommandSpeaker{name: fields[0], args: fields[1:]}, nil
	}

	for _, candidate := range DefaultCommands {
		if _, err := exec.LookPath(candidate); err == nil {
			return &CommandSpeaker{name: candidate}, nil
		}
	}
	return nil, fmt.Errorf("no speech command found (tried %s)", strings.Join(DefaultCommands, ", "))
}

func (c *CommandSpeaker) Speak(ctx context.Context, text string) error {
	args := append(append([]string{}, c.args...), text)
	cmd := exec.CommandContext(ctx, c.name, args...)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return fmt.Errorf("%s: %w: %s", c.name, err, strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%s: %w", c.name, err)
	}
	return nil
}

// WriterSpeaker prints the utterance instead of voicing it.
type WriterSpeaker struct {
	w io.Writer
}

func NewWriterSpeaker(w io.Writer) *WriterSpeaker {
	return &WriterSpeaker{w: w}
}

func (s *WriterSpeaker) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}
