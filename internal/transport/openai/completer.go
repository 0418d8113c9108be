package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	"github.com/kailas-cloud/machine-advisor/internal/metrics"
)

// Endpoint values for Config.Endpoint.
const (
	EndpointCompletions = "completions"
	EndpointChat        = "chat"
)

const providerName = "openai"

// Completer is a text generation provider using the OpenAI-compatible API.
type Completer struct {
	client      *openai.Client
	model       string
	endpoint    string
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

// Config holds the completion provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Endpoint    string
	Temperature float32
	MaxTokens   int
	Logger      *zap.Logger
}

// NewCompleter creates an OpenAI-compatible completion provider.
func NewCompleter(cfg *Config) *Completer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Completer{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		endpoint:    cfg.Endpoint,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}
}

// Complete sends the prompt once and returns the generated text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	var (
		text string
		err  error
	)
	if c.endpoint == EndpointChat {
		text, err = c.chat(ctx, prompt)
	} else {
		text, err = c.complete(ctx, prompt)
	}

	if err != nil {
		metrics.ModelRequestsTotal.WithLabelValues(providerName, c.model, "error").Inc()
		c.logger.Debug("completion failed", zap.String("model", c.model), zap.Error(err))
		return "", err
	}

	metrics.ModelRequestsTotal.WithLabelValues(providerName, c.model, "success").Inc()
	metrics.ModelRequestDuration.WithLabelValues(providerName, c.model).Observe(time.Since(start).Seconds())
	return text, nil
}

func (c *Completer) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Text) == "" {
		return "", fmt.Errorf("empty completion response: %w", domain.ErrModelUnavailable)
	}
	return resp.Choices[0].Text, nil
}

func (c *Completer) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty chat response: %w", domain.ErrModelUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrModelUnavailable.
func parseAPIError(err error) error {
	wrap := domain.ErrModelUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("completion API error %d: %s: %w", reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("completion API error %d: %s: %w", reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("completion request failed: %w: %w", wrap, err)
}

// extractDetail reads the "detail" field some OpenAI-compatible gateways return.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
