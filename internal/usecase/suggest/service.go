// Package suggest implements the suggestion pipeline: catalog match, ROI,
// fallback advice and vendor join, assembled into one answer.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	logpkg "github.com/kailas-cloud/machine-advisor/internal/logger"
	"github.com/kailas-cloud/machine-advisor/internal/metrics"
)

// Service is the suggestion pipeline.
type Service struct {
	machines  MachineLoader
	vendors   VendorLoader
	advisor   Advisor
	laborRate float64
}

// New creates a suggestion service. A non-positive laborRate uses the default rate.
func New(machines MachineLoader, vendors VendorLoader, advisor Advisor, laborRate float64) *Service {
	if laborRate <= 0 {
		laborRate = domain.DefaultLaborRate
	}
	return &Service{
		machines:  machines,
		vendors:   vendors,
		advisor:   advisor,
		laborRate: laborRate,
	}
}

// Suggest answers a problem description. Loader errors abort the request.
func (s *Service) Suggest(ctx context.Context, problem string) (domain.Suggestion, error) {
	if strings.TrimSpace(problem) == "" {
		return domain.Suggestion{}, fmt.Errorf("problem is required: %w", domain.ErrInvalidQuery)
	}
	log := logpkg.FromContext(ctx)
	log.Info("processing automation request", zap.String("problem", problem))

	machines, err := s.machines.LoadMachines(ctx)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("load machines: %w", err)
	}

	var result domain.Suggestion
	if m, ok := MatchMachine(problem, machines); ok {
		result, err = s.fromCatalog(ctx, m)
	} else {
		result, err = s.fromAdvisor(ctx, problem)
	}
	if err != nil {
		return domain.Suggestion{}, err
	}

	metrics.SuggestionsTotal.WithLabelValues(string(result.Source)).Inc()
	log.Info("suggestion ready",
		zap.String("source", string(result.Source)),
		zap.String("machine", result.MachineName),
		zap.Int("vendors", len(result.Vendors)),
	)
	return result, nil
}

func (s *Service) fromCatalog(ctx context.Context, m domain.Machine) (domain.Suggestion, error) {
	table, err := s.vendors.LoadVendors(ctx)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("load vendors: %w", err)
	}

	vendors := JoinByRefs(m.VendorRefs, table)
	roi := domain.CalculateROI(m.Cost, m.MonthlyLaborSavings(s.laborRate))
	savings := CatalogSavings(m.ManpowerSavings)
	cost := domain.Float(m.Cost)

	return domain.Suggestion{
		Summary: FormatSummary(SummaryInput{
			MachineName:     m.Name,
			MachineCost:     cost,
			ROIMonths:       roi,
			ManpowerSavings: savings,
			Vendors:         vendors,
			KeepZeroCost:    true,
		}),
		MachineName:     m.Name,
		MachineCost:     cost,
		ROIMonths:       roi,
		ManpowerSavings: savings,
		Vendors:         vendors,
		Source:          domain.SourceCatalog,
	}, nil
}

func (s *Service) fromAdvisor(ctx context.Context, problem string) (domain.Suggestion, error) {
	advice := s.advisor.Suggest(ctx, problem)

	table, err := s.vendors.LoadVendors(ctx)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("load vendors: %w", err)
	}
	vendors := JoinByMachineType(advice.MachineSuggestion, table)

	return domain.Suggestion{
		Summary: FormatSummary(SummaryInput{
			MachineName:     advice.MachineSuggestion,
			MachineCost:     advice.MachineCost,
			ROIMonths:       advice.ROIMonths,
			ManpowerSavings: advice.ManpowerSavings,
			Vendors:         vendors,
		}),
		MachineName:     advice.MachineSuggestion,
		MachineCost:     advice.MachineCost,
		ROIMonths:       advice.ROIMonths,
		ManpowerSavings: advice.ManpowerSavings,
		Vendors:         vendors,
		Source:          advice.Source,
	}, nil
}
