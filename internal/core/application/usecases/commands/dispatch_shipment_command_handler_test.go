package commands_test

import (
	"testing"

	"lensdispatch/internal/core/application/usecases/commands"
	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchShipmentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	shipmentEntity := openShipment(t, "DKT-1001")
	require.NoError(t, shipmentEntity.AttachBox(sealedBox(t)))

	cmd, err := commands.NewDispatchShipmentCommand(shipmentEntity.ID())
	require.NoError(t, err)

	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockShipmentUoW)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Update", ctx, shipmentEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDispatchShipmentCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Equal(t, shipment.Dispatched, shipmentEntity.Status())
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestDispatchShipmentCommandHandler_Handle_EmptyManifestRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	shipmentEntity := openShipment(t, "DKT-1001")

	cmd, err := commands.NewDispatchShipmentCommand(shipmentEntity.ID())
	require.NoError(t, err)

	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockShipmentUoW)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDispatchShipmentCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var requiredErr errs.ValueIsRequiredError
	require.ErrorAs(t, err, &requiredErr)
	require.Equal(t, shipment.Created, shipmentEntity.Status())
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}

func TestMarkShipmentInTransitCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	shipmentEntity := dispatchedShipment(t)

	cmd, err := commands.NewMarkShipmentInTransitCommand(shipmentEntity.ID())
	require.NoError(t, err)

	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockShipmentUoW)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Update", ctx, shipmentEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkShipmentInTransitCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Equal(t, shipment.InTransit, shipmentEntity.Status())
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestMarkShipmentInTransitCommandHandler_Handle_BeforeDispatchRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	shipmentEntity := openShipment(t, "DKT-1001")

	cmd, err := commands.NewMarkShipmentInTransitCommand(shipmentEntity.ID())
	require.NoError(t, err)

	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockShipmentUoW)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkShipmentInTransitCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var transitionErr errs.IllegalTransitionError
	require.ErrorAs(t, err, &transitionErr)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}
