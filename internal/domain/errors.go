package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or malformed problem description.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCatalogUnavailable signals a missing or malformed machine catalog or vendor table.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrModelUnavailable signals a failed call to the generative model.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrModelReplyInvalid signals a model reply that does not carry a usable suggestion.
	ErrModelReplyInvalid = errors.New("model reply invalid")
	// ErrRateLimited signals a model call denied by the local limiter.
	ErrRateLimited = errors.New("rate limited")

	// ErrTranscriptionNotConfigured signals a missing transcription API key.
	ErrTranscriptionNotConfigured = errors.New("transcription api key not set")
	// ErrTranscriptionUpload signals a failed audio upload.
	ErrTranscriptionUpload = errors.New("failed to upload audio")
	// ErrTranscriptionStart signals a failed transcription job start.
	ErrTranscriptionStart = errors.New("failed to start transcription")
	// ErrTranscriptionPoll signals a failed job status poll.
	ErrTranscriptionPoll = errors.New("failed to poll transcription")
	// ErrTranscriptionFailed signals a job the upstream service reported as failed.
	ErrTranscriptionFailed = errors.New("transcription failed")
	// ErrTranscriptionTimeout signals a job that did not finish within the poll budget.
	ErrTranscriptionTimeout = errors.New("transcription timed out")
)
