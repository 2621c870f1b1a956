package dto

import "github.com/emergency-locator/internal/domain"

// RouteToServiceResponse is the client-facing contract of the route
// orchestrator. Its JSON shape is stable regardless of which upstream
// provider produced the route.
type RouteToServiceResponse struct {
	UserLocation   domain.Coordinate      `json:"user_location"`
	NearestService *domain.NearestService `json:"nearest_service"`
	Route          *domain.Route          `json:"route"`
}

// RadiusSearchResponse lists services found within a radius, closest first.
type RadiusSearchResponse struct {
	Services []*domain.NearestService `json:"services"`
	Total    int                      `json:"total"`
}

// ReviewsResponse lists reviews for one service, newest first.
type ReviewsResponse struct {
	Reviews []*domain.Review `json:"reviews"`
	Total   int              `json:"total"`
}
