package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/pkg/utils"
	"github.com/emergency-locator/internal/repository/postgres"
	"github.com/emergency-locator/internal/repository/postgres/testhelpers"
)

// ServiceRepositorySuite tests the facility repository against a real
// PostGIS database.
type ServiceRepositorySuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	services repository.ServiceRepository
	reviews  repository.ReviewRepository
	ctx      context.Context
}

func (s *ServiceRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	_ = testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.services = postgres.NewServiceRepository(db)
	s.reviews = postgres.NewReviewRepository(db)
}

func (s *ServiceRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *ServiceRepositorySuite) SetupTest() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *ServiceRepositorySuite) seed() (hospital, police, fire *domain.EmergencyService) {
	var err error

	hospital, err = s.services.Create(s.ctx, &domain.EmergencyService{
		Name: "Hospital de Santa Maria",
		Type: domain.ServiceTypeHospital,
		Lon:  -9.1607, Lat: 38.7492,
	})
	s.Require().NoError(err)

	police, err = s.services.Create(s.ctx, &domain.EmergencyService{
		Name: "PSP Baixa",
		Type: domain.ServiceTypePolice,
		Lon:  -9.1333, Lat: 38.7139,
	})
	s.Require().NoError(err)

	fire, err = s.services.Create(s.ctx, &domain.EmergencyService{
		Name: "Bombeiros de Oeiras",
		Type: domain.ServiceTypeFireStation,
		Lon:  -9.3105, Lat: 38.6872,
	})
	s.Require().NoError(err)

	return hospital, police, fire
}

func (s *ServiceRepositorySuite) TestFindNearest() {
	hospital, _, _ := s.seed()

	// Query point a few hundred meters south of the hospital
	nearest, err := s.services.FindNearest(s.ctx, 38.7436, -9.1602)
	s.Require().NoError(err)

	s.Equal(hospital.ID, nearest.ID)
	s.Equal(domain.ServiceTypeHospital, nearest.Type)
	s.Greater(nearest.DistanceMeters, 0.0)
	s.Less(nearest.DistanceMeters, 1500.0)

	// Brute-force cross-check: no seeded facility is closer than the answer.
	// Spherical haversine vs the store's spheroid differ by well under 1%.
	all, err := s.services.GetAll(s.ctx)
	s.Require().NoError(err)
	for _, svc := range all {
		d := utils.HaversineDistance(38.7436, -9.1602, svc.Lat, svc.Lon)
		s.GreaterOrEqual(d*1.01+10, nearest.DistanceMeters,
			"facility %d is closer than the reported nearest", svc.ID)
	}
}

func (s *ServiceRepositorySuite) TestFindNearest_EmptyStore() {
	nearest, err := s.services.FindNearest(s.ctx, 38.7436, -9.1602)

	s.Nil(nearest)
	s.Equal(errors.ErrNoServicesFound, err)
}

func (s *ServiceRepositorySuite) TestSearchWithinRadius() {
	hospital, police, _ := s.seed()

	// 6 km around central Lisbon reaches the hospital and the police
	// station but not the fire station out in Oeiras
	found, err := s.services.SearchWithinRadius(s.ctx, 38.7200, -9.1400, 6000, nil)
	s.Require().NoError(err)
	s.Require().Len(found, 2)

	// Closest first
	s.Equal(police.ID, found[0].ID)
	s.Equal(hospital.ID, found[1].ID)
	s.LessOrEqual(found[0].DistanceMeters, found[1].DistanceMeters)
}

func (s *ServiceRepositorySuite) TestSearchWithinRadius_TypeFilter() {
	_, police, _ := s.seed()

	found, err := s.services.SearchWithinRadius(
		s.ctx, 38.7200, -9.1400, 6000,
		[]domain.ServiceType{domain.ServiceTypePolice},
	)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(police.ID, found[0].ID)
}

func (s *ServiceRepositorySuite) TestSearchWithinRadius_EmptyResult() {
	s.seed()

	found, err := s.services.SearchWithinRadius(s.ctx, 40.0, -8.0, 1000, nil)
	s.Require().NoError(err)
	s.Empty(found)
}

func (s *ServiceRepositorySuite) TestCreateBatchAndGetAll() {
	batch := []*domain.EmergencyService{
		{Name: "A", Type: domain.ServiceTypeHospital, Lon: -9.1, Lat: 38.7},
		{Name: "B", Type: domain.ServiceTypePolice, Lon: -9.2, Lat: 38.8},
	}

	loaded, err := s.services.CreateBatch(s.ctx, batch)
	s.Require().NoError(err)
	s.Equal(2, loaded)

	all, err := s.services.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *ServiceRepositorySuite) TestDelete() {
	hospital, _, _ := s.seed()

	s.Require().NoError(s.services.Delete(s.ctx, hospital.ID))

	exists, err := s.services.Exists(s.ctx, hospital.ID)
	s.Require().NoError(err)
	s.False(exists)

	s.Equal(errors.ErrServiceNotFound, s.services.Delete(s.ctx, hospital.ID))
}

func (s *ServiceRepositorySuite) TestReviews() {
	hospital, _, _ := s.seed()

	created, err := s.reviews.Create(s.ctx, &domain.Review{
		ServiceID: hospital.ID,
		UserName:  "maria",
		Rating:    5,
		Review:    "Excellent care",
	})
	s.Require().NoError(err)
	s.NotZero(created.ID)
	s.False(created.CreatedAt.IsZero())

	reviews, err := s.reviews.GetByServiceID(s.ctx, hospital.ID)
	s.Require().NoError(err)
	s.Len(reviews, 1)
}

func (s *ServiceRepositorySuite) TestReviewForMissingService() {
	_, err := s.reviews.Create(s.ctx, &domain.Review{
		ServiceID: 424242,
		UserName:  "ghost",
		Rating:    3,
		Review:    "never happened",
	})

	s.Equal(errors.ErrServiceNotFound, err)
}

func TestServiceRepositorySuite(t *testing.T) {
	suite.Run(t, new(ServiceRepositorySuite))
}
