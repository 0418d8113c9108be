// Package advisor suggests a machine for problems the catalog cannot match.
// It asks a generative model once and falls back to keyword rules when the
// call fails or the reply is unusable.
package advisor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	logpkg "github.com/kailas-cloud/machine-advisor/internal/logger"
)

// Service is the fallback advisor.
type Service struct {
	completer Completer
	limiter   Limiter
	timeout   time.Duration
	laborRate float64
}

// New creates an advisor. completer may be nil, in which case only keyword rules are used.
func New(completer Completer, laborRate float64) *Service {
	if laborRate <= 0 {
		laborRate = domain.DefaultLaborRate
	}
	return &Service{completer: completer, laborRate: laborRate}
}

// WithLimiter gates model calls; a denied call falls back to keyword rules.
func (s *Service) WithLimiter(l Limiter) *Service {
	s.limiter = l
	return s
}

// WithTimeout bounds each model call.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// Suggest returns model advice for the problem, or keyword-rule advice if the model tier fails.
func (s *Service) Suggest(ctx context.Context, problem string) domain.Advice {
	log := logpkg.FromContext(ctx)

	advice, err := s.askModel(ctx, problem)
	if err != nil {
		log.Warn("model suggestion failed, using keyword rules", zap.Error(err))
		return StaticAdvice(problem)
	}
	return advice
}

func (s *Service) askModel(ctx context.Context, problem string) (domain.Advice, error) {
	if s.completer == nil {
		return domain.Advice{}, fmt.Errorf("no model configured: %w", domain.ErrModelUnavailable)
	}
	if s.limiter != nil && !s.limiter.Allow() {
		return domain.Advice{}, domain.ErrRateLimited
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.completer.Complete(ctx, BuildPrompt(problem, s.laborRate))
	if err != nil {
		return domain.Advice{}, fmt.Errorf("complete: %w", err)
	}

	advice, err := ParseReply(reply)
	if err != nil {
		return domain.Advice{}, fmt.Errorf("parse reply: %w", err)
	}
	return advice, nil
}
