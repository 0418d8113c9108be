// Package assemblyai is a minimal AssemblyAI REST client: upload audio,
// start a transcript job and read its status.
package assemblyai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// DefaultBaseURL is the public AssemblyAI API.
const DefaultBaseURL = "https://api.assemblyai.com"

// Config holds the client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the AssemblyAI v2 API.
type Client struct {
	http *resty.Client
}

// New creates an AssemblyAI client.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("authorization", cfg.APIKey)
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &Client{http: c}
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptRequest struct {
	AudioURL string `json:"audio_url"`
}

// Upload sends raw audio and returns the URL the service stored it under.
func (c *Client) Upload(ctx context.Context, audio io.Reader) (string, error) {
	var out uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(audio).
		SetResult(&out).
		Post("/v2/upload")
	if err := checkResponse(resp, err); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	if out.UploadURL == "" {
		return "", errors.New("upload: response has no upload_url")
	}
	return out.UploadURL, nil
}

// StartTranscript creates a transcript job for previously uploaded audio.
func (c *Client) StartTranscript(ctx context.Context, audioURL string) (string, error) {
	var out domain.TranscriptJob
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(transcriptRequest{AudioURL: audioURL}).
		SetResult(&out).
		Post("/v2/transcript")
	if err := checkResponse(resp, err); err != nil {
		return "", fmt.Errorf("start transcript: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("start transcript: response has no id")
	}
	return out.ID, nil
}

// GetTranscript returns the current state of a transcript job.
func (c *Client) GetTranscript(ctx context.Context, id string) (domain.TranscriptJob, error) {
	var out domain.TranscriptJob
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get("/v2/transcript/{id}")
	if err := checkResponse(resp, err); err != nil {
		return domain.TranscriptJob{}, fmt.Errorf("get transcript %s: %w", id, err)
	}
	return out, nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
