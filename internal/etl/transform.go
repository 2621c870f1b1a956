package etl

import (
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/emergency-locator/internal/domain"
)

const defaultName = "Unknown"

// Skip reasons reported by Transform.
const (
	SkipNoCoordinates = "no_coordinates"
	SkipUnknownType   = "unknown_type"
)

// TransformResult is the outcome of normalizing one raw element.
type TransformResult struct {
	Service    *domain.EmergencyService
	SkipReason string
}

// Transform normalizes a raw OSM element into a facility row. Elements that
// cannot be resolved to a coordinate or a known category are reported as
// skipped, never as errors: one bad record must not abort the batch.
func Transform(el OverpassElement) TransformResult {
	serviceType := domain.ServiceType(el.Tags["amenity"])
	if !serviceType.IsValid() {
		return TransformResult{SkipReason: SkipUnknownType}
	}

	lon, lat, ok := resolveCoordinates(el)
	if !ok {
		return TransformResult{SkipReason: SkipNoCoordinates}
	}

	name := el.Tags["name"]
	if name == "" {
		name = defaultName
	}

	return TransformResult{
		Service: &domain.EmergencyService{
			Name:        name,
			Type:        serviceType,
			Address:     resolveAddress(el.Tags),
			ContactInfo: resolveContact(el.Tags),
			Lon:         lon,
			Lat:         lat,
		},
	}
}

// resolveCoordinates returns the point for a node, or the centroid of the
// outline for a way.
func resolveCoordinates(el OverpassElement) (lon, lat float64, ok bool) {
	switch el.Type {
	case "node":
		if el.Lat == 0 && el.Lon == 0 {
			return 0, 0, false
		}
		return el.Lon, el.Lat, true
	case "way":
		if len(el.Geometry) == 0 {
			return 0, 0, false
		}
		flat := make([]float64, 0, len(el.Geometry)*2)
		for _, p := range el.Geometry {
			flat = append(flat, p.Lon, p.Lat)
		}
		centroid := xy.PointsCentroidFlat(geom.XY, flat)
		return centroid.X(), centroid.Y(), true
	}
	return 0, 0, false
}

func resolveAddress(tags map[string]string) string {
	if full := tags["addr:full"]; full != "" {
		return full
	}

	var parts []string
	if street := tags["addr:street"]; street != "" {
		if num := tags["addr:housenumber"]; num != "" {
			parts = append(parts, fmt.Sprintf("%s %s", street, num))
		} else {
			parts = append(parts, street)
		}
	}
	if city := tags["addr:city"]; city != "" {
		parts = append(parts, city)
	}
	return strings.Join(parts, ", ")
}

func resolveContact(tags map[string]string) string {
	if phone := tags["phone"]; phone != "" {
		return phone
	}
	return tags["contact:phone"]
}
