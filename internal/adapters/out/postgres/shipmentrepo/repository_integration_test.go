package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"lensdispatch/internal/adapters/out/postgres/shipmentrepo"
	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite verifies manifest and confirmation
// persistence, docket uniqueness and the open-shipment lookup against a real
// PostgreSQL instance.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentBoxDTO{},
		&shipmentrepo.ConfirmationDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, shipment_boxes, shipment_confirmations").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) sealedBox() *box.Box {
	b, err := box.NewBox(kernel.NewUUID(),
		time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(b.StartPacking())
	suite.Require().NoError(b.MarkPacked())
	return b
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(docket string, boxes int) *shipment.Shipment {
	s, err := shipment.NewShipment(kernel.NewUUID(), docket, kernel.NewUUID(),
		time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	for range boxes {
		suite.Require().NoError(s.AttachBox(suite.sealedBox()))
	}
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripWithManifest() {
	ctx := context.Background()
	s := suite.newShipment("DKT-1001", 2)

	suite.Require().NoError(suite.repository.Add(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(s.ID()))
	suite.Equal("DKT-1001", restored.DocketNumber())
	suite.Equal(shipment.Created, restored.Status())
	suite.Len(restored.Boxes(), 2)
	suite.Empty(restored.Confirmations())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateDocket_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newShipment("DKT-1001", 1)))

	err := suite.repository.Add(ctx, suite.newShipment("DKT-1001", 1))

	var conflictErr errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal("shipment", conflictErr.Resource)
	suite.Equal("DKT-1001", conflictErr.Key)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndConfirmations() {
	ctx := context.Background()
	s := suite.newShipment("DKT-1001", 1)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.Require().NoError(s.Dispatch())
	confirmation, err := shipment.NewConfirmation(kernel.NewUUID(), "reception", shipment.Received, "all good")
	suite.Require().NoError(err)
	suite.Require().NoError(s.Confirm(confirmation))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, restored.Status())
	suite.Require().Len(restored.Confirmations(), 1)
	suite.Equal("reception", restored.Confirmations()[0].ConfirmedBy())
	suite.Equal(shipment.Received, restored.Confirmations()[0].Status())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetOpenContaining_FindsHolder() {
	ctx := context.Background()
	b := suite.sealedBox()
	s := suite.newShipment("DKT-1001", 0)
	suite.Require().NoError(s.AttachBox(b))
	suite.Require().NoError(suite.repository.Add(ctx, s))

	holder, err := suite.repository.GetOpenContaining(ctx, b.ID())

	suite.Require().NoError(err)
	suite.True(holder.ID().IsEqual(s.ID()))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetOpenContaining_FreeBox_ReturnsNotFound() {
	_, err := suite.repository.GetOpenContaining(context.Background(), kernel.NewUUID())

	var notFoundErr errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetOpenContaining_DeliveredHolderDoesNotBlock() {
	ctx := context.Background()
	b := suite.sealedBox()
	s := suite.newShipment("DKT-1001", 0)
	suite.Require().NoError(s.AttachBox(b))
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.Require().NoError(s.Dispatch())
	confirmation, err := shipment.NewConfirmation(kernel.NewUUID(), "reception", shipment.Received, "")
	suite.Require().NoError(err)
	suite.Require().NoError(s.Confirm(confirmation))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	_, err = suite.repository.GetOpenContaining(ctx, b.ID())

	var notFoundErr errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
