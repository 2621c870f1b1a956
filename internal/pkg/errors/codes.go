package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidServiceType = New(
		"INVALID_SERVICE_TYPE",
		"Invalid emergency service type",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating must be an integer between 1 and 5",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrServiceNotFound = New(
		"SERVICE_NOT_FOUND",
		"Emergency service not found",
		http.StatusNotFound,
	)

	ErrNoServicesFound = New(
		"NO_SERVICES_FOUND",
		"No emergency services found",
		http.StatusNotFound,
	)

	ErrNoRouteFound = New(
		"NO_ROUTE_FOUND",
		"No route found",
		http.StatusNotFound,
	)

	ErrRouteProviderUnavailable = New(
		"ROUTE_PROVIDER_UNAVAILABLE",
		"Directions provider request failed",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
