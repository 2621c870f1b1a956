package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/pkg/metrics"
)

type googleClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mode       string
	logger     *zap.Logger
}

// newGoogleClient builds the Google Directions API client.
func newGoogleClient(cfg *config.DirectionsConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &googleClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.GoogleBaseURL,
		apiKey:  cfg.GoogleAPIKey,
		mode:    cfg.Mode,
		logger:  logger,
	}
}

type googleValue struct {
	Value float64 `json:"value"`
}

type googleLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleStep struct {
	HTMLInstructions string       `json:"html_instructions"`
	Distance         googleValue  `json:"distance"`
	Duration         googleValue  `json:"duration"`
	StartLocation    googleLatLng `json:"start_location"`
}

type googleLeg struct {
	Distance googleValue  `json:"distance"`
	Duration googleValue  `json:"duration"`
	Steps    []googleStep `json:"steps"`
}

type googleRoute struct {
	Legs             []googleLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

type googleResponse struct {
	Status string        `json:"status"`
	Routes []googleRoute `json:"routes"`
}

func (c *googleClient) GetRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error) {
	start := time.Now()
	route, err := c.getRoute(ctx, origin, destination)
	metrics.DirectionsDuration.WithLabelValues(ProviderGoogle).Observe(time.Since(start).Seconds())
	metrics.DirectionsRequests.WithLabelValues(ProviderGoogle, outcomeLabel(err)).Inc()
	return route, err
}

func (c *googleClient) getRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lon))
	params.Set("mode", c.mode)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/maps/api/directions/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create directions request", zap.Error(err))
		return nil, errors.ErrRouteProviderUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Google Directions request failed", zap.Error(err))
		return nil, errors.ErrRouteProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Google Directions returned error status",
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.ErrRouteProviderUnavailable
	}

	var gResp googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		c.logger.Error("Failed to decode Google Directions response", zap.Error(err))
		return nil, errors.ErrRouteProviderUnavailable
	}

	// ZERO_RESULTS is a successful answer meaning no path exists.
	if gResp.Status == "ZERO_RESULTS" || (gResp.Status == "OK" && len(gResp.Routes) == 0) {
		return nil, errors.ErrNoRouteFound
	}
	if gResp.Status != "OK" {
		c.logger.Error("Google Directions returned non-OK status",
			zap.String("status", gResp.Status))
		return nil, errors.ErrRouteProviderUnavailable
	}

	gRoute := gResp.Routes[0]
	if len(gRoute.Legs) == 0 {
		c.logger.Error("Google Directions route has no legs")
		return nil, errors.ErrRouteProviderUnavailable
	}
	leg := gRoute.Legs[0]

	steps := make([]domain.RouteStep, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, domain.RouteStep{
			Instruction: s.HTMLInstructions,
			Location: domain.Coordinate{
				Lon: s.StartLocation.Lng,
				Lat: s.StartLocation.Lat,
			},
			DistanceMeters:  s.Distance.Value,
			DurationSeconds: s.Duration.Value,
		})
	}

	// Totals come from the provider's leg summary, not from summing steps.
	return &domain.Route{
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
		Geometry:        gRoute.OverviewPolyline.Points,
		Steps:           normalizeSteps(steps),
	}, nil
}

func outcomeLabel(err error) string {
	switch err {
	case nil:
		return "ok"
	case errors.ErrNoRouteFound:
		return "no_route"
	default:
		return "error"
	}
}
