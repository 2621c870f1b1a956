// Package docs Emergency Locator API.
//
// Service for locating emergency facilities (hospitals, police stations,
// fire stations) and routing users to them. Facility data is ingested from
// OpenStreetMap and stored in PostGIS; routes come from a configurable
// directions provider (Google Directions or OSRM).
//
// Main capabilities:
// - Nearest emergency facility lookup with turn-by-turn directions
// - Radius search over facilities with category filtering
// - Facility registry management and user reviews
// - Point-to-point routing
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
