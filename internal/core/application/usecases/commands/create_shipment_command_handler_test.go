package commands_test

import (
	"testing"
	"time"

	"lensdispatch/internal/core/application/usecases/commands"
	"lensdispatch/internal/core/domain/model/courier"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/core/ports"
	"lensdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_Validation(t *testing.T) {
	shipmentDate := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateShipmentCommand("DKT-2001", kernel.NewUUID(), shipmentDate)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, "DKT-2001", cmd.DocketNumber())
	})

	t.Run("docket number required", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand("", kernel.NewUUID(), shipmentDate)

		require.ErrorIs(t, err, commands.ErrDocketNumberIsRequired)
	})

	t.Run("shipment date required", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand("DKT-2001", kernel.NewUUID(), time.Time{})

		require.ErrorIs(t, err, commands.ErrShipmentDateIsRequired)
	})
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierEntity, err := courier.NewCourier(kernel.NewUUID(), "BlueDart")
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand("DKT-2001", courierEntity.ID(),
		time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockShipmentIntakeUoW)
	mockFactory := new(MockShipmentIntakeUoWFactory)
	mockActivity := new(MockActivityLog)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockCourierRepo.On("Get", ctx, courierEntity.ID()).Return(courierEntity, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Add", ctx, mock.MatchedBy(func(s *shipment.Shipment) bool {
			return s.DocketNumber() == "DKT-2001" && s.Status() == shipment.Created
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()
	mockActivity.On("Record", ctx, mock.MatchedBy(func(event ports.ActivityEvent) bool {
		return event.Entity == "shipment" && event.EntityID == cmd.ShipmentID().String() &&
			event.Action == "registered"
	})).Return(nil).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, mockActivity)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
	mockActivity.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_UnknownCourier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewCreateShipmentCommand("DKT-2001", courierID,
		time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockUoW := new(MockShipmentIntakeUoW)
	mockFactory := new(MockShipmentIntakeUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockCourierRepo.On("Get", ctx, courierID).
			Return(nil, errs.NewObjectNotFoundError("courierID", courierID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var notFoundErr errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_DuplicateDocket(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierEntity, err := courier.NewCourier(kernel.NewUUID(), "BlueDart")
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand("DKT-2001", courierEntity.ID(),
		time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockShipmentIntakeUoW)
	mockFactory := new(MockShipmentIntakeUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockCourierRepo.On("Get", ctx, courierEntity.ID()).Return(courierEntity, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Add", ctx, mock.Anything).
			Return(errs.NewConflictError("shipment", "DKT-2001")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var conflictErr errs.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}
