package etl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/domain"
)

// overpassQuery fetches hospital, police and fire station amenities as nodes
// and ways. "out geom" attaches node coordinates and way outlines.
const overpassQuery = `[out:json][timeout:%d];
(
  node["amenity"~"^(hospital|police|fire_station)$"](%s);
  way["amenity"~"^(hospital|police|fire_station)$"](%s);
);
out geom;`

// OverpassElement is one raw OSM element. Nodes carry Lat/Lon directly; ways
// carry their outline in Geometry.
type OverpassElement struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Lat      float64           `json:"lat"`
	Lon      float64           `json:"lon"`
	Geometry []OverpassLatLon  `json:"geometry"`
	Tags     map[string]string `json:"tags"`
}

type OverpassLatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []OverpassElement `json:"elements"`
}

// OverpassClient extracts emergency amenities from the Overpass API.
type OverpassClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOverpassClient(cfg *config.ETLConfig, logger *zap.Logger) *OverpassClient {
	return &OverpassClient{
		baseURL: cfg.OverpassURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Fetch runs the amenity query for one bounding box and returns the raw
// elements. The Overpass timeout is set slightly below the HTTP timeout so
// the server aborts before the client does.
func (c *OverpassClient) Fetch(ctx context.Context, bbox domain.BoundingBox) ([]OverpassElement, error) {
	bboxArg := fmt.Sprintf("%f,%f,%f,%f", bbox.South, bbox.West, bbox.North, bbox.East)
	serverTimeout := int(c.httpClient.Timeout.Seconds())
	if serverTimeout > 1 {
		serverTimeout--
	}
	query := fmt.Sprintf(overpassQuery, serverTimeout, bboxArg, bboxArg)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Info("Fetching amenities from Overpass",
		zap.String("url", c.baseURL),
		zap.String("bbox", bboxArg),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("overpass returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	c.logger.Info("Overpass fetch complete", zap.Int("elements", len(parsed.Elements)))
	return parsed.Elements, nil
}

// ParseBBox parses "south,west,north,east" into a BoundingBox.
func ParseBBox(s string) (domain.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return domain.BoundingBox{}, fmt.Errorf("bbox must be south,west,north,east, got %q", s)
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.BoundingBox{}, fmt.Errorf("invalid bbox component %q: %w", p, err)
		}
		vals[i] = v
	}

	bbox := domain.BoundingBox{South: vals[0], West: vals[1], North: vals[2], East: vals[3]}
	if bbox.South >= bbox.North || bbox.West >= bbox.East {
		return domain.BoundingBox{}, fmt.Errorf("degenerate bbox %q", s)
	}
	return bbox, nil
}
