package commands_test

import (
	"context"
	"time"

	"lensdispatch/internal/core/application/usecases/commands"
	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/courier"
	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/order"
	"lensdispatch/internal/core/domain/model/returns"
	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/core/domain/model/store"
	"lensdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests in this package.

type MockDeliveryGroupRepository struct {
	mock.Mock
}

func (m *MockDeliveryGroupRepository) Add(ctx context.Context, aggregate *deliverygroup.DeliveryGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryGroupRepository) Get(ctx context.Context, id kernel.UUID) (*deliverygroup.DeliveryGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverygroup.DeliveryGroup), args.Error(1)
}

func (m *MockDeliveryGroupRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*deliverygroup.DeliveryGroup, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverygroup.DeliveryGroup), args.Error(1)
}

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, code string) (*store.Store, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) GetAllInGroup(ctx context.Context, groupID kernel.UUID) ([]*store.Store, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) Add(ctx context.Context, aggregate *box.Box) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBoxRepository) Update(ctx context.Context, aggregate *box.Box) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBoxRepository) Get(ctx context.Context, id kernel.UUID) (*box.Box, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*box.Box), args.Error(1)
}

func (m *MockBoxRepository) GetAllStalePacking(ctx context.Context, asOf time.Time) ([]*box.Box, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*box.Box), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInBox(ctx context.Context, boxID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasAnyForStore(ctx context.Context, storeCode string) (bool, error) {
	args := m.Called(ctx, storeCode)
	return args.Bool(0), args.Error(1)
}

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetOpenContaining(ctx context.Context, boxID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockReturnRepository struct {
	mock.Mock
}

func (m *MockReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReturnRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*returns.Return, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*returns.Return), args.Error(1)
}

type MockActivityLog struct {
	mock.Mock
}

func (m *MockActivityLog) Record(ctx context.Context, event ports.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockGroupCache struct {
	mock.Mock
}

func (m *MockGroupCache) GetGroupID(ctx context.Context, fingerprint string) (kernel.UUID, bool, error) {
	args := m.Called(ctx, fingerprint)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockGroupCache) PutGroupID(ctx context.Context, fingerprint string, groupID kernel.UUID) error {
	args := m.Called(ctx, fingerprint, groupID)
	return args.Error(0)
}

type MockCourierUoW struct {
	mock.Mock
}

func (m *MockCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockStoreUoW struct {
	mock.Mock
}

func (m *MockStoreUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockStoreUoW) DeliveryGroupRepository() ports.DeliveryGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryGroupRepository)
}

func (m *MockStoreUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockStoreUoWFactory struct {
	mock.Mock
}

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

type MockBoxUoW struct {
	mock.Mock
}

func (m *MockBoxUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBoxUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBoxUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBoxUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

func (m *MockBoxUoW) DeliveryGroupRepository() ports.DeliveryGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryGroupRepository)
}

type MockBoxUoWFactory struct {
	mock.Mock
}

func (m *MockBoxUoWFactory) Create() commands.BoxUoW {
	args := m.Called()
	return args.Get(0).(commands.BoxUoW)
}

type MockPackingUoW struct {
	mock.Mock
}

func (m *MockPackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPackingUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

func (m *MockPackingUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockPackingUoWFactory struct {
	mock.Mock
}

func (m *MockPackingUoWFactory) Create() commands.PackingUoW {
	args := m.Called()
	return args.Get(0).(commands.PackingUoW)
}

type MockReturnUoW struct {
	mock.Mock
}

func (m *MockReturnUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReturnUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReturnUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReturnUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReturnUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

func (m *MockReturnUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}

type MockReturnUoWFactory struct {
	mock.Mock
}

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockShipmentIntakeUoW struct {
	mock.Mock
}

func (m *MockShipmentIntakeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentIntakeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentIntakeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentIntakeUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentIntakeUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockShipmentIntakeUoWFactory struct {
	mock.Mock
}

func (m *MockShipmentIntakeUoWFactory) Create() commands.ShipmentIntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentIntakeUoW)
}

type MockManifestUoW struct {
	mock.Mock
}

func (m *MockManifestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockManifestUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

type MockManifestUoWFactory struct {
	mock.Mock
}

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockShipmentUoW struct {
	mock.Mock
}

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct {
	mock.Mock
}

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockWatchdogUoW struct {
	mock.Mock
}

func (m *MockWatchdogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWatchdogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWatchdogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWatchdogUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

type MockWatchdogUoWFactory struct {
	mock.Mock
}

func (m *MockWatchdogUoWFactory) Create() commands.WatchdogUoW {
	args := m.Called()
	return args.Get(0).(commands.WatchdogUoW)
}

type MockDeleteStoreUoW struct {
	mock.Mock
}

func (m *MockDeleteStoreUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteStoreUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteStoreUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockDeleteStoreUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDeleteStoreUoWFactory struct {
	mock.Mock
}

func (m *MockDeleteStoreUoWFactory) Create() commands.DeleteStoreUoW {
	args := m.Called()
	return args.Get(0).(commands.DeleteStoreUoW)
}
