package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/pkg/metrics"
)

type osrmClient struct {
	httpClient *http.Client
	baseURL    string
	mode       string
	logger     *zap.Logger
}

// newOSRMClient builds the OSRM routing engine client.
func newOSRMClient(cfg *config.DirectionsConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &osrmClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.OSRMBaseURL,
		mode:    cfg.Mode,
		logger:  logger,
	}
}

type osrmManeuver struct {
	Location []float64 `json:"location"`
	Type     string    `json:"type"`
	Modifier string    `json:"modifier"`
}

type osrmStep struct {
	Distance float64      `json:"distance"`
	Duration float64      `json:"duration"`
	Name     string       `json:"name"`
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmRoute struct {
	Distance float64   `json:"distance"`
	Duration float64   `json:"duration"`
	Geometry string    `json:"geometry"`
	Legs     []osrmLeg `json:"legs"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

func (c *osrmClient) GetRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error) {
	start := time.Now()
	route, err := c.getRoute(ctx, origin, destination)
	metrics.DirectionsDuration.WithLabelValues(ProviderOSRM).Observe(time.Since(start).Seconds())
	metrics.DirectionsRequests.WithLabelValues(ProviderOSRM, outcomeLabel(err)).Inc()
	return route, err
}

func (c *osrmClient) getRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error) {
	// OSRM takes lon,lat pairs in the path.
	reqURL := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&steps=true",
		c.baseURL, c.mode,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create OSRM request", zap.Error(err))
		return nil, errors.ErrRouteProviderUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("OSRM request failed", zap.Error(err))
		return nil, errors.ErrRouteProviderUnavailable
	}
	defer resp.Body.Close()

	// OSRM reports NoRoute with a 400-class status, so decode before
	// rejecting on the HTTP code.
	var oResp osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&oResp); err != nil {
		c.logger.Error("Failed to decode OSRM response", zap.Error(err))
		return nil, errors.ErrRouteProviderUnavailable
	}

	if oResp.Code == "NoRoute" || (oResp.Code == "Ok" && len(oResp.Routes) == 0) {
		return nil, errors.ErrNoRouteFound
	}
	if oResp.Code != "Ok" {
		c.logger.Error("OSRM returned non-Ok code",
			zap.String("code", oResp.Code),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.ErrRouteProviderUnavailable
	}

	oRoute := oResp.Routes[0]

	var steps []domain.RouteStep
	for _, leg := range oRoute.Legs {
		for _, s := range leg.Steps {
			var loc domain.Coordinate
			if len(s.Maneuver.Location) >= 2 {
				loc = domain.Coordinate{Lon: s.Maneuver.Location[0], Lat: s.Maneuver.Location[1]}
			}
			steps = append(steps, domain.RouteStep{
				Instruction:     buildInstruction(s),
				Location:        loc,
				DistanceMeters:  s.Distance,
				DurationSeconds: s.Duration,
			})
		}
	}

	// Totals come from the provider's route summary, not from summing steps.
	return &domain.Route{
		DistanceMeters:  oRoute.Distance,
		DurationSeconds: oRoute.Duration,
		Geometry:        oRoute.Geometry,
		Steps:           normalizeSteps(steps),
	}, nil
}

// buildInstruction synthesizes a textual instruction from the OSRM maneuver
// descriptor, since OSRM does not emit instruction strings.
func buildInstruction(s osrmStep) string {
	var b strings.Builder

	switch s.Maneuver.Type {
	case "depart":
		b.WriteString("Head out")
	case "arrive":
		b.WriteString("Arrive at destination")
	case "turn", "end of road", "fork":
		b.WriteString("Turn")
		if s.Maneuver.Modifier != "" {
			b.WriteString(" ")
			b.WriteString(s.Maneuver.Modifier)
		}
	case "roundabout", "rotary":
		b.WriteString("Take the roundabout")
	case "merge":
		b.WriteString("Merge")
		if s.Maneuver.Modifier != "" {
			b.WriteString(" ")
			b.WriteString(s.Maneuver.Modifier)
		}
	case "":
		// fall through to the shared placeholder in normalizeSteps
	default:
		b.WriteString("Continue")
		if s.Maneuver.Modifier != "" {
			b.WriteString(" ")
			b.WriteString(s.Maneuver.Modifier)
		}
	}

	if s.Name != "" && s.Maneuver.Type != "arrive" {
		if b.Len() > 0 {
			b.WriteString(" onto ")
		}
		b.WriteString(s.Name)
	}

	return b.String()
}
