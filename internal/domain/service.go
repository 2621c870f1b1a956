package domain

// ServiceType is the fixed category set for emergency services.
type ServiceType string

const (
	ServiceTypeHospital    ServiceType = "hospital"
	ServiceTypePolice      ServiceType = "police"
	ServiceTypeFireStation ServiceType = "fire_station"
)

// ValidServiceTypes lists every accepted category, in a stable order.
var ValidServiceTypes = []ServiceType{
	ServiceTypeHospital,
	ServiceTypePolice,
	ServiceTypeFireStation,
}

func (t ServiceType) IsValid() bool {
	for _, valid := range ValidServiceTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// EmergencyService is a facility record. The point is stored as
// geography(Point,4326); Lon/Lat are extracted as plain numbers on read.
// Rows are never mutated after creation, only hard-deleted.
type EmergencyService struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Type        ServiceType `json:"type" db:"type"`
	Address     string      `json:"address" db:"address"`
	ContactInfo string      `json:"contact_info" db:"contact_info"`
	Lon         float64     `json:"longitude" db:"longitude"`
	Lat         float64     `json:"latitude" db:"latitude"`
}

// NearestService is an EmergencyService plus the geodesic distance from the
// query point. DistanceMeters is derived per query, never stored.
type NearestService struct {
	EmergencyService
	DistanceMeters float64 `json:"distance_meters" db:"distance_meters"`
}
