package dto

// AddServiceRequest creates a new emergency service record.
type AddServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=hospital police fire_station"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	Address     string  `json:"address" validate:"required"`
	ContactInfo string  `json:"contact_info" validate:"required"`
}

// RadiusSearchRequest searches services of given types within a radius.
type RadiusSearchRequest struct {
	Latitude     float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64  `json:"radius_meters" validate:"required,min=1,max=100000"`
	Types        []string `json:"types" validate:"omitempty,dive,oneof=hospital police fire_station"`
}

// AddReviewRequest appends a review to an existing service.
type AddReviewRequest struct {
	ServiceID int64  `json:"service_id" validate:"required,min=1"`
	UserName  string `json:"user_name" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Review    string `json:"review" validate:"required"`
}

// RouteRequest asks for a route between two explicit points.
type RouteRequest struct {
	StartLon float64 `json:"start_lon" validate:"min=-180,max=180"`
	StartLat float64 `json:"start_lat" validate:"min=-90,max=90"`
	EndLon   float64 `json:"end_lon" validate:"min=-180,max=180"`
	EndLat   float64 `json:"end_lat" validate:"min=-90,max=90"`
}
