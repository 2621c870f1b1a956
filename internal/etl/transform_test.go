package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergency-locator/internal/domain"
)

func TestTransform_Node(t *testing.T) {
	t.Run("complete node maps all fields", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "node",
			ID:   101,
			Lat:  38.7492,
			Lon:  -9.1607,
			Tags: map[string]string{
				"amenity":   "hospital",
				"name":      "Hospital de Santa Maria",
				"addr:full": "Av. Prof. Egas Moniz, Lisboa",
				"phone":     "+351 217 805 000",
			},
		})

		require.Empty(t, result.SkipReason)
		require.NotNil(t, result.Service)
		assert.Equal(t, domain.ServiceTypeHospital, result.Service.Type)
		assert.Equal(t, "Hospital de Santa Maria", result.Service.Name)
		assert.Equal(t, "Av. Prof. Egas Moniz, Lisboa", result.Service.Address)
		assert.Equal(t, "+351 217 805 000", result.Service.ContactInfo)
		assert.Equal(t, -9.1607, result.Service.Lon)
		assert.Equal(t, 38.7492, result.Service.Lat)
	})

	t.Run("missing name falls back to Unknown", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "node",
			Lat:  38.7,
			Lon:  -9.1,
			Tags: map[string]string{"amenity": "police"},
		})

		require.NotNil(t, result.Service)
		assert.Equal(t, "Unknown", result.Service.Name)
		assert.Equal(t, domain.ServiceTypePolice, result.Service.Type)
	})

	t.Run("node without coordinates is skipped", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "node",
			Tags: map[string]string{"amenity": "hospital", "name": "Ghost"},
		})

		assert.Nil(t, result.Service)
		assert.Equal(t, SkipNoCoordinates, result.SkipReason)
	})

	t.Run("unknown amenity is skipped", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "node",
			Lat:  38.7,
			Lon:  -9.1,
			Tags: map[string]string{"amenity": "pharmacy"},
		})

		assert.Nil(t, result.Service)
		assert.Equal(t, SkipUnknownType, result.SkipReason)
	})
}

func TestTransform_Way(t *testing.T) {
	t.Run("way outline reduces to its centroid", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "way",
			ID:   202,
			Geometry: []OverpassLatLon{
				{Lat: 38.70, Lon: -9.20},
				{Lat: 38.70, Lon: -9.10},
				{Lat: 38.80, Lon: -9.10},
				{Lat: 38.80, Lon: -9.20},
			},
			Tags: map[string]string{
				"amenity": "fire_station",
				"name":    "Quartel de Bombeiros",
			},
		})

		require.Empty(t, result.SkipReason)
		require.NotNil(t, result.Service)
		assert.InDelta(t, -9.15, result.Service.Lon, 1e-9)
		assert.InDelta(t, 38.75, result.Service.Lat, 1e-9)
	})

	t.Run("way without outline is skipped", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "way",
			Tags: map[string]string{"amenity": "hospital"},
		})

		assert.Nil(t, result.Service)
		assert.Equal(t, SkipNoCoordinates, result.SkipReason)
	})
}

func TestTransform_Address(t *testing.T) {
	t.Run("composes street, number and city when addr:full is absent", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "node",
			Lat:  38.7,
			Lon:  -9.1,
			Tags: map[string]string{
				"amenity":          "police",
				"addr:street":      "Rua Augusta",
				"addr:housenumber": "24",
				"addr:city":        "Lisboa",
			},
		})

		require.NotNil(t, result.Service)
		assert.Equal(t, "Rua Augusta 24, Lisboa", result.Service.Address)
	})

	t.Run("contact:phone is the phone fallback", func(t *testing.T) {
		result := Transform(OverpassElement{
			Type: "node",
			Lat:  38.7,
			Lon:  -9.1,
			Tags: map[string]string{
				"amenity":       "police",
				"contact:phone": "+351 213 421 634",
			},
		})

		require.NotNil(t, result.Service)
		assert.Equal(t, "+351 213 421 634", result.Service.ContactInfo)
	})
}

func TestParseBBox(t *testing.T) {
	t.Run("parses south west north east", func(t *testing.T) {
		bbox, err := ParseBBox("38.69,-9.25,38.80,-9.09")
		require.NoError(t, err)
		assert.Equal(t, domain.BoundingBox{South: 38.69, West: -9.25, North: 38.80, East: -9.09}, bbox)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, in := range []string{"", "1,2,3", "a,b,c,d", "38.8,-9.25,38.69,-9.09"} {
			_, err := ParseBBox(in)
			assert.Error(t, err, in)
		}
	})
}
