// Package transcribe turns uploaded audio into text through a remote
// transcription service, polling the job until it settles.
package transcribe

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	logpkg "github.com/kailas-cloud/machine-advisor/internal/logger"
	"github.com/kailas-cloud/machine-advisor/internal/metrics"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultMaxPolls     = 150
)

// Service proxies audio to the transcription client.
type Service struct {
	client       Client
	pollInterval time.Duration
	maxPolls     int
}

// New creates a transcription service. A nil client means no API key is configured.
func New(client Client, pollInterval time.Duration, maxPolls int) *Service {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if maxPolls <= 0 {
		maxPolls = defaultMaxPolls
	}
	return &Service{client: client, pollInterval: pollInterval, maxPolls: maxPolls}
}

// Transcribe uploads the audio, starts a job and waits for its text.
func (s *Service) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	text, err := s.transcribe(ctx, audio)
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.TranscriptionsTotal.WithLabelValues("success").Inc()
	return text, nil
}

func (s *Service) transcribe(ctx context.Context, audio io.Reader) (string, error) {
	if s.client == nil {
		return "", domain.ErrTranscriptionNotConfigured
	}
	log := logpkg.FromContext(ctx)

	audioURL, err := s.client.Upload(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTranscriptionUpload, err)
	}

	id, err := s.client.StartTranscript(ctx, audioURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTranscriptionStart, err)
	}
	log.Info("transcription started", zap.String("transcript_id", id))

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for range s.maxPolls {
		job, err := s.client.GetTranscript(ctx, id)
		if err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrTranscriptionPoll, err)
		}
		if job.Done() {
			if job.Failed() {
				return "", fmt.Errorf("%w: %s", domain.ErrTranscriptionFailed, job.Error)
			}
			return job.Text, nil
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", domain.ErrTranscriptionTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
	return "", fmt.Errorf("%w: job %s not done after %d polls", domain.ErrTranscriptionTimeout, id, s.maxPolls)
}
