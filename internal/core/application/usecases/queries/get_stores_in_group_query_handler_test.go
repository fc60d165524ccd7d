package queries_test

import (
	"context"
	"testing"
	"time"

	"lensdispatch/internal/adapters/out/postgres/grouprepo"
	"lensdispatch/internal/adapters/out/postgres/storerepo"
	"lensdispatch/internal/core/application/usecases/queries"
	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/store"
	"lensdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the repositories' aggregate tracker without a unit of work.
type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type GetStoresInGroupQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStoresInGroupQueryHandler
	storeRepo *storerepo.GormStoreRepository
	groupRepo *grouprepo.GormDeliveryGroupRepository
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&grouprepo.DeliveryGroupDTO{}, &storerepo.StoreDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStoresInGroupQueryHandler(db)
	suite.storeRepo = storerepo.NewGormStoreRepository(db)
	suite.groupRepo = grouprepo.NewGormDeliveryGroupRepository(db, nopTracker{})
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE stores, delivery_groups CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) addGroup(address, city, pin string) *deliverygroup.DeliveryGroup {
	group, err := deliverygroup.NewDeliveryGroup(kernel.NewUUID(), address, city, pin)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.groupRepo.Add(context.Background(), group))
	return group
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) addStore(code, name string, groupID kernel.UUID) *store.Store {
	s, err := store.NewStore(code, name, "12 MG Road", "Bengaluru", "KA", "560038", "080-1234", nil, groupID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.storeRepo.Add(context.Background(), s))
	return s
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TestHandle_EmptyGroup_ReturnsEmptySlice() {
	group := suite.addGroup("12 MG Road", "Bengaluru", "560038")

	query, err := queries.NewGetStoresInGroupQuery(group.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TestHandle_ReturnsOnlyStoresOfTheGroup() {
	group := suite.addGroup("12 MG Road", "Bengaluru", "560038")
	other := suite.addGroup("9 Brigade Road", "Bengaluru", "560001")

	suite.addStore("LB-001", "Lens Bar Indiranagar", group.ID())
	suite.addStore("LB-002", "Lens Bar Annex", group.ID())
	suite.addStore("LB-100", "Lens Bar Brigade", other.ID())

	query, err := queries.NewGetStoresInGroupQuery(group.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("LB-001", result[0].Code)
	suite.Equal("LB-002", result[1].Code)
	suite.Equal("Lens Bar Indiranagar", result[0].Name)
	suite.Equal("560038", result[0].PostalCode)
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStoresInGroupQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetStoresInGroupQuery constructor")
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TestGetStore_ReturnsStoreWithGroup() {
	group := suite.addGroup("12 MG Road", "Bengaluru", "560038")
	suite.addStore("LB-001", "Lens Bar Indiranagar", group.ID())

	handler := queries.NewGetStoreQueryHandler(suite.db)
	query, err := queries.NewGetStoreQuery("LB-001")
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("LB-001", result.Code)
	suite.Equal("Lens Bar Indiranagar", result.Name)
	suite.Equal("560038", result.PostalCode)
	suite.Equal(group.ID(), result.DeliveryGroupID)
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TestGetStore_UnknownCode_ReturnsNotFound() {
	handler := queries.NewGetStoreQueryHandler(suite.db)
	query, err := queries.NewGetStoreQuery("LB-404")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	var notFound errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *GetStoresInGroupQueryHandlerTestSuite) TestGetStore_EmptyCode_ReturnsError() {
	_, err := queries.NewGetStoreQuery("")

	var required errs.ValueIsRequiredError
	suite.Require().ErrorAs(err, &required)
}

func TestGetStoresInGroupQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStoresInGroupQueryHandlerTestSuite))
}
