// Package app assembles the advisor services from configuration.
// It is the shared composition root of the server and the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/machine-advisor/internal/config"
	dbRedis "github.com/kailas-cloud/machine-advisor/internal/db/redis"
	"github.com/kailas-cloud/machine-advisor/internal/repository/catalog"
	vendorrepo "github.com/kailas-cloud/machine-advisor/internal/repository/vendor"
	"github.com/kailas-cloud/machine-advisor/internal/transport/assemblyai"
	"github.com/kailas-cloud/machine-advisor/internal/transport/gemini"
	openaiTransport "github.com/kailas-cloud/machine-advisor/internal/transport/openai"
	advisoruc "github.com/kailas-cloud/machine-advisor/internal/usecase/advisor"
	healthuc "github.com/kailas-cloud/machine-advisor/internal/usecase/health"
	suggestuc "github.com/kailas-cloud/machine-advisor/internal/usecase/suggest"
	transcribeuc "github.com/kailas-cloud/machine-advisor/internal/usecase/transcribe"
)

// App holds the wired services.
type App struct {
	Catalog    *catalog.Store
	VendorRepo *vendorrepo.Repository // nil unless vendors live in Redis
	Advisor    *advisoruc.Service
	Suggest    *suggestuc.Service
	Transcribe *transcribeuc.Service
	Health     *healthuc.Service
	redisStore *dbRedis.Store
}

// New wires every service. Redis is connected only for the redis vendor source.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	a := &App{
		Catalog: catalog.New(cfg.Catalog.MachinesPath, cfg.Catalog.VendorsPath),
	}

	var vendors suggestuc.VendorLoader = a.Catalog
	var vendorPinger healthuc.Pinger
	if cfg.Catalog.VendorSource == config.VendorSourceRedis {
		store, err := ConnectRedis(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.redisStore = store
		a.VendorRepo = vendorrepo.New(store, cfg.Database.KeyPrefix)
		vendors = a.VendorRepo
		vendorPinger = store
		logger.Info("Connected to vendor database", zap.Strings("addrs", cfg.Database.Addrs))
	}

	completer, err := NewCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Advisor = advisoruc.New(completer, cfg.Labor.MonthlyRate).
		WithTimeout(time.Duration(cfg.LLM.TimeoutSec) * time.Second)
	if cfg.LLM.RatePerSec > 0 {
		a.Advisor.WithLimiter(rate.NewLimiter(rate.Limit(cfg.LLM.RatePerSec), cfg.LLM.Burst))
	}

	a.Suggest = suggestuc.New(a.Catalog, vendors, a.Advisor, cfg.Labor.MonthlyRate)
	a.Transcribe = transcribeuc.New(
		NewTranscriptionClient(cfg.Transcription),
		time.Duration(cfg.Transcription.PollIntervalMs)*time.Millisecond,
		cfg.Transcription.MaxPolls,
	)
	a.Health = healthuc.New(a.Catalog, vendorPinger)

	return a, nil
}

// Close releases the vendor database connection, if any.
func (a *App) Close() {
	if a.redisStore != nil {
		a.redisStore.Close()
	}
}

// ConnectRedis opens the vendor database and waits until it answers.
func ConnectRedis(ctx context.Context, cfg config.DatabaseConfig) (*dbRedis.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("create vendor store: %w", err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("vendor store not ready: %w", err)
	}
	return store, nil
}

// NewCompleter builds the configured model client. It returns a nil Completer
// when the provider is disabled or no API key is set.
func NewCompleter(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (advisoruc.Completer, error) {
	if cfg.Provider == config.ProviderNone || cfg.APIKey == "" {
		logger.Warn("Generative model disabled, using keyword rules only", zap.String("provider", cfg.Provider))
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		c, err := gemini.NewCompleter(ctx, &gemini.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini completer: %w", err)
		}
		return c, nil
	default:
		return openaiTransport.NewCompleter(&openaiTransport.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Endpoint:    cfg.Endpoint,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Logger:      logger,
		}), nil
	}
}

// NewTranscriptionClient returns nil when no API key is set, so requests fail with a configuration error.
func NewTranscriptionClient(cfg config.TranscriptionConfig) transcribeuc.Client {
	if cfg.APIKey == "" {
		return nil
	}
	return assemblyai.New(assemblyai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
	})
}
