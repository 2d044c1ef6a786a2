package application

import "context"

// Notifier forwards the final utterance to a secondary channel, such as a
// phone push. Title names the player the answer is about. Failures are
// logged by the Assistant and never end the run.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

type NoopNotifier struct{}

func (n *NoopNotifier) Notify(context.Context, string, string) error { return nil }
