package advisor

import "context"

// Completer sends a prompt to a generative text model and returns its raw reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Limiter decides whether a model call may proceed right now.
// *rate.Limiter satisfies it.
type Limiter interface {
	Allow() bool
}
