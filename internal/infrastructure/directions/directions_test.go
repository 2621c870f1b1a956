package directions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/domain"
)

func TestNew_ProviderDispatch(t *testing.T) {
	logger := zap.NewNop()

	t.Run("google", func(t *testing.T) {
		client, err := New(googleTestConfig("https://maps.googleapis.com"), logger)
		require.NoError(t, err)
		assert.IsType(t, &googleClient{}, client)
	})

	t.Run("osrm", func(t *testing.T) {
		client, err := New(osrmTestConfig("http://router.project-osrm.org"), logger)
		require.NoError(t, err)
		assert.IsType(t, &osrmClient{}, client)
	})

	t.Run("unknown provider", func(t *testing.T) {
		client, err := New(&config.DirectionsConfig{Provider: "mapquest"}, logger)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

// Both provider fixtures describe the same physical route; after
// normalization the results must agree on everything except the provider's
// instruction wording.
func TestNormalization_CrossProviderEquivalence(t *testing.T) {
	logger := zap.NewNop()
	origin := domain.Coordinate{Lon: -9.2, Lat: 38.71}
	dest := domain.Coordinate{Lon: -9.23, Lat: 38.7}

	googleServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(googleFixture))
	}))
	defer googleServer.Close()

	osrmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(osrmFixture))
	}))
	defer osrmServer.Close()

	gClient := newGoogleClient(googleTestConfig(googleServer.URL), logger)
	oClient := newOSRMClient(osrmTestConfig(osrmServer.URL), logger)

	gRoute, err := gClient.GetRoute(context.Background(), origin, dest)
	require.NoError(t, err)
	oRoute, err := oClient.GetRoute(context.Background(), origin, dest)
	require.NoError(t, err)

	assert.Equal(t, gRoute.DistanceMeters, oRoute.DistanceMeters)
	assert.Equal(t, gRoute.DurationSeconds, oRoute.DurationSeconds)
	assert.Equal(t, gRoute.Geometry, oRoute.Geometry)

	require.Equal(t, len(gRoute.Steps), len(oRoute.Steps))
	for i := range gRoute.Steps {
		assert.Equal(t, gRoute.Steps[i].DistanceMeters, oRoute.Steps[i].DistanceMeters)
		assert.Equal(t, gRoute.Steps[i].DurationSeconds, oRoute.Steps[i].DurationSeconds)
		assert.Equal(t, gRoute.Steps[i].Location, oRoute.Steps[i].Location)
		assert.NotEmpty(t, gRoute.Steps[i].Instruction)
		assert.NotEmpty(t, oRoute.Steps[i].Instruction)
	}
}
