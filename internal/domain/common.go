package domain

// BoundingBox is the ingestion area in Overpass order: south, west, north, east.
type BoundingBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}
