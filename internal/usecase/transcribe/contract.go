package transcribe

import (
	"context"
	"io"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// Client is the remote transcription API.
type Client interface {
	Upload(ctx context.Context, audio io.Reader) (string, error)
	StartTranscript(ctx context.Context, audioURL string) (string, error)
	GetTranscript(ctx context.Context, id string) (domain.TranscriptJob, error)
}
