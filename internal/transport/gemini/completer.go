// Package gemini adapts the Google Gen AI SDK to the advisor's completer contract.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	"github.com/kailas-cloud/machine-advisor/internal/metrics"
)

const providerName = "gemini"

// Config holds the Gemini provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Logger      *zap.Logger
}

// Completer generates text with a Gemini model.
type Completer struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	logger      *zap.Logger
}

// NewCompleter creates a Gemini completion provider.
func NewCompleter(ctx context.Context, cfg *Config) (*Completer, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Completer{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   int32(cfg.MaxTokens), //nolint:gosec // bounded by config validation
		logger:      logger,
	}, nil
}

// Complete sends the prompt once and returns the generated text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}
	if c.maxTokens > 0 {
		genCfg.MaxOutputTokens = c.maxTokens
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
	if err != nil {
		metrics.ModelRequestsTotal.WithLabelValues(providerName, c.model, "error").Inc()
		c.logger.Debug("gemini request failed", zap.String("model", c.model), zap.Error(err))
		return "", fmt.Errorf("gemini request failed: %w: %w", domain.ErrModelUnavailable, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		metrics.ModelRequestsTotal.WithLabelValues(providerName, c.model, "error").Inc()
		return "", fmt.Errorf("empty gemini response: %w", domain.ErrModelUnavailable)
	}

	metrics.ModelRequestsTotal.WithLabelValues(providerName, c.model, "success").Inc()
	metrics.ModelRequestDuration.WithLabelValues(providerName, c.model).Observe(time.Since(start).Seconds())
	return text, nil
}
