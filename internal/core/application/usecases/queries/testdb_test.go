package queries_test

import (
	"context"
	"time"

	"titipin/internal/adapters/out/postgres/messagerepo"
	"titipin/internal/adapters/out/postgres/offerrepo"
	"titipin/internal/adapters/out/postgres/orderrepo"
	"titipin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker ignores tracking calls; query tests only need the
// repositories for seeding.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// startPostgres boots a disposable PostgreSQL container with the full schema
// migrated. Shared by every query handler suite in this package.
func startPostgres(s *suite.Suite) (*pgcontainer.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	s.Require().NoError(err)

	s.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &offerrepo.OfferDTO{}, &messagerepo.MessageDTO{}))

	return container, db
}
