package domain

// Coordinate is a WGS84 point (longitude, latitude).
type Coordinate struct {
	Lon float64 `json:"longitude"`
	Lat float64 `json:"latitude"`
}

// RouteStep is a single normalized turn instruction.
type RouteStep struct {
	Instruction     string     `json:"instruction"`
	Location        Coordinate `json:"location"`
	DistanceMeters  float64    `json:"distance"`
	DurationSeconds float64    `json:"duration"`
}

// Route is the provider-agnostic route contract. Totals come from the
// provider's own route summary, never from summing steps. Geometry is the
// provider's encoded polyline, passed through unchanged for the client to
// render.
type Route struct {
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Geometry        string      `json:"geometry"`
	Steps           []RouteStep `json:"steps"`
}
