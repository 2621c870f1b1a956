// Package directions holds the HTTP clients for the supported upstream
// directions providers. Each client normalizes its provider's response into
// domain.Route; the provider is selected once, at configuration time.
package directions

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
)

const (
	ProviderGoogle = "google"
	ProviderOSRM   = "osrm"
)

// fallbackInstruction fills in when a provider omits the step instruction.
const fallbackInstruction = "Continue"

// New returns the directions client for the configured provider.
func New(cfg *config.DirectionsConfig, logger *zap.Logger) (repository.DirectionsRepository, error) {
	switch cfg.Provider {
	case ProviderGoogle:
		return newGoogleClient(cfg, logger), nil
	case ProviderOSRM:
		return newOSRMClient(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown directions provider: %q", cfg.Provider)
	}
}

// normalizeSteps enforces the step contract: non-empty instruction,
// non-negative distance and duration.
func normalizeSteps(steps []domain.RouteStep) []domain.RouteStep {
	for i := range steps {
		if steps[i].Instruction == "" {
			steps[i].Instruction = fallbackInstruction
		}
		if steps[i].DistanceMeters < 0 {
			steps[i].DistanceMeters = 0
		}
		if steps[i].DurationSeconds < 0 {
			steps[i].DurationSeconds = 0
		}
	}
	return steps
}
