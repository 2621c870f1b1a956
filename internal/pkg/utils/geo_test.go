package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for same point", func(t *testing.T) {
		d := HaversineDistance(38.70, -9.23, 38.70, -9.23)
		assert.Equal(t, 0.0, d)
	})

	t.Run("lisbon to porto", func(t *testing.T) {
		// Lisbon (38.7223, -9.1393) to Porto (41.1579, -8.6291) is ~274 km.
		d := HaversineDistance(38.7223, -9.1393, 41.1579, -8.6291)
		assert.InDelta(t, 274000, d, 5000)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(38.70, -9.23, 38.75, -9.10)
		d2 := HaversineDistance(38.75, -9.10, 38.70, -9.23)
		assert.InDelta(t, d1, d2, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{"valid lisbon", 38.70, -9.23, true},
		{"boundary north pole", 90, 0, true},
		{"boundary antimeridian", 0, -180, true},
		{"latitude too high", 90.0001, 0, false},
		{"longitude out of range", 38.70, 200, false},
		{"nan latitude", math.NaN(), 0, false},
		{"inf longitude", 0, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}

func TestValidateRadiusMeters(t *testing.T) {
	assert.True(t, ValidateRadiusMeters(1))
	assert.True(t, ValidateRadiusMeters(5000))
	assert.True(t, ValidateRadiusMeters(100000))
	assert.False(t, ValidateRadiusMeters(0))
	assert.False(t, ValidateRadiusMeters(-10))
	assert.False(t, ValidateRadiusMeters(100001))
}
