// Package http exposes the dispatch operations over a REST API.
// Request DTOs are validated with go-playground/validator before the
// corresponding command or query is constructed.
package http

import (
	"net/http"

	"lensdispatch/internal/core/application/usecases/commands"
	"lensdispatch/internal/core/application/usecases/queries"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request DTO against its struct tags.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler      commands.CreateCourierCommandHandler
	createStoreHandler        commands.CreateStoreCommandHandler
	updateStoreAddressHandler commands.UpdateStoreAddressCommandHandler
	deleteStoreHandler        commands.DeleteStoreCommandHandler
	createBoxHandler          commands.CreateBoxCommandHandler
	packOrderHandler          commands.PackOrderCommandHandler
	markOrderPackedHandler    commands.MarkOrderPackedCommandHandler
	returnOrderHandler        commands.ReturnOrderCommandHandler
	createShipmentHandler     commands.CreateShipmentCommandHandler
	attachBoxHandler          commands.AttachBoxCommandHandler
	dispatchShipmentHandler   commands.DispatchShipmentCommandHandler
	markShipmentInTransit     commands.MarkShipmentInTransitCommandHandler
	confirmDeliveryHandler    commands.ConfirmDeliveryCommandHandler

	// Query handlers
	getStoreHandler         queries.GetStoreQueryHandler
	getStoresInGroupHandler queries.GetStoresInGroupQueryHandler
	getOpenShipmentsHandler queries.GetOpenShipmentsQueryHandler
	getAwaitingBoxesHandler queries.GetBoxesAwaitingDispatchQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	createStoreHandler commands.CreateStoreCommandHandler,
	updateStoreAddressHandler commands.UpdateStoreAddressCommandHandler,
	deleteStoreHandler commands.DeleteStoreCommandHandler,
	createBoxHandler commands.CreateBoxCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	markOrderPackedHandler commands.MarkOrderPackedCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	attachBoxHandler commands.AttachBoxCommandHandler,
	dispatchShipmentHandler commands.DispatchShipmentCommandHandler,
	markShipmentInTransit commands.MarkShipmentInTransitCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getStoreHandler queries.GetStoreQueryHandler,
	getStoresInGroupHandler queries.GetStoresInGroupQueryHandler,
	getOpenShipmentsHandler queries.GetOpenShipmentsQueryHandler,
	getAwaitingBoxesHandler queries.GetBoxesAwaitingDispatchQueryHandler,
) *Server {
	return &Server{
		createCourierHandler:      createCourierHandler,
		createStoreHandler:        createStoreHandler,
		updateStoreAddressHandler: updateStoreAddressHandler,
		deleteStoreHandler:        deleteStoreHandler,
		createBoxHandler:          createBoxHandler,
		packOrderHandler:          packOrderHandler,
		markOrderPackedHandler:    markOrderPackedHandler,
		returnOrderHandler:        returnOrderHandler,
		createShipmentHandler:     createShipmentHandler,
		attachBoxHandler:          attachBoxHandler,
		dispatchShipmentHandler:   dispatchShipmentHandler,
		markShipmentInTransit:     markShipmentInTransit,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		getStoreHandler:           getStoreHandler,
		getStoresInGroupHandler:   getStoresInGroupHandler,
		getOpenShipmentsHandler:   getOpenShipmentsHandler,
		getAwaitingBoxesHandler:   getAwaitingBoxesHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/couriers", s.CreateCourier)
	api.POST("/stores", s.CreateStore)
	api.GET("/stores/:code", s.GetStore)
	api.PUT("/stores/:code/address", s.UpdateStoreAddress)
	api.DELETE("/stores/:code", s.DeleteStore)
	api.GET("/delivery-groups/:id/stores", s.GetStoresInGroup)
	api.POST("/boxes", s.CreateBox)
	api.GET("/boxes/awaiting-dispatch", s.GetBoxesAwaitingDispatch)
	api.POST("/orders", s.PackOrder)
	api.POST("/orders/:id/packed", s.MarkOrderPacked)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/open", s.GetOpenShipments)
	api.POST("/shipments/:id/boxes", s.AttachBox)
	api.POST("/shipments/:id/dispatch", s.DispatchShipment)
	api.POST("/shipments/:id/in-transit", s.MarkShipmentInTransit)
	api.POST("/shipments/:id/confirmations", s.ConfirmDelivery)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CourierID().String()})
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req CreateStoreRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	var courierID *kernel.UUID
	if req.CourierID != nil {
		id, err := kernel.UUIDFromString(*req.CourierID)
		if err != nil {
			return writeError(ctx, err)
		}
		courierID = &id
	}

	cmd, err := commands.NewCreateStoreCommand(
		req.Code, req.Name, req.Address, req.City, req.State, req.PostalCode, req.Contact, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateStoreAddress handles PUT /api/v1/stores/:code/address.
func (s *Server) UpdateStoreAddress(ctx echo.Context) error {
	var req UpdateStoreAddressRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStoreAddressCommand(
		ctx.Param("code"), req.Address, req.City, req.State, req.PostalCode)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStoreAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetStore handles GET /api/v1/stores/:code.
func (s *Server) GetStore(ctx echo.Context) error {
	query, err := queries.NewGetStoreQuery(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	storeRecord, err := s.getStoreHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StoreDetailResponse{
		Code:            storeRecord.Code,
		Name:            storeRecord.Name,
		Address:         storeRecord.Address,
		City:            storeRecord.City,
		State:           storeRecord.State,
		PostalCode:      storeRecord.PostalCode,
		Contact:         storeRecord.Contact,
		DeliveryGroupID: storeRecord.DeliveryGroupID.String(),
	})
}

// DeleteStore handles DELETE /api/v1/stores/:code.
func (s *Server) DeleteStore(ctx echo.Context) error {
	cmd, err := commands.NewDeleteStoreCommand(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStoresInGroup handles GET /api/v1/delivery-groups/:id/stores.
func (s *Server) GetStoresInGroup(ctx echo.Context) error {
	groupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetStoresInGroupQuery(groupID)
	if err != nil {
		return writeError(ctx, err)
	}

	stores, err := s.getStoresInGroupHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StoreResponse, len(stores))
	for i, store := range stores {
		response[i] = StoreResponse{
			Code:       store.Code,
			Name:       store.Name,
			Address:    store.Address,
			City:       store.City,
			State:      store.State,
			PostalCode: store.PostalCode,
			Contact:    store.Contact,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBox handles POST /api/v1/boxes.
func (s *Server) CreateBox(ctx echo.Context) error {
	var req CreateBoxRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	groupID, err := kernel.UUIDFromString(req.DeliveryGroupID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateBoxCommand(req.DispatchDate, groupID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.BoxID().String()})
}

// GetBoxesAwaitingDispatch handles GET /api/v1/boxes/awaiting-dispatch.
func (s *Server) GetBoxesAwaitingDispatch(ctx echo.Context) error {
	query := queries.NewGetBoxesAwaitingDispatchQuery()

	boxes, err := s.getAwaitingBoxesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BoxResponse, len(boxes))
	for i, b := range boxes {
		response[i] = BoxResponse{
			ID:              b.ID.String(),
			DispatchDate:    b.DispatchDate,
			DeliveryGroupID: b.DeliveryGroupID.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PackOrder handles POST /api/v1/orders.
func (s *Server) PackOrder(ctx echo.Context) error {
	var req PackOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	boxID, err := kernel.UUIDFromString(req.BoxID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPackOrderCommand(req.CustomerRef, req.StoreCode, boxID, req.OrderDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.packOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID().String()})
}

// MarkOrderPacked handles POST /api/v1/orders/:id/packed.
func (s *Server) MarkOrderPacked(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPackedCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markOrderPackedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReturnOrder handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	var req ReturnOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, req.Reason, req.ReturnedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(req.DocketNumber, courierID, req.ShipmentDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ShipmentID().String()})
}

// GetOpenShipments handles GET /api/v1/shipments/open.
func (s *Server) GetOpenShipments(ctx echo.Context) error {
	query := queries.NewGetOpenShipmentsQuery()

	shipments, err := s.getOpenShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = ShipmentResponse{
			ID:           sh.ID.String(),
			DocketNumber: sh.DocketNumber,
			CourierName:  sh.CourierName,
			ShipmentDate: sh.ShipmentDate,
			Status:       sh.Status.String(),
			BoxCount:     sh.BoxCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AttachBox handles POST /api/v1/shipments/:id/boxes.
func (s *Server) AttachBox(ctx echo.Context) error {
	var req AttachBoxRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	boxID, err := kernel.UUIDFromString(req.BoxID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAttachBoxCommand(shipmentID, boxID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.attachBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DispatchShipment handles POST /api/v1/shipments/:id/dispatch.
func (s *Server) DispatchShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchShipmentCommand(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.dispatchShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkShipmentInTransit handles POST /api/v1/shipments/:id/in-transit.
func (s *Server) MarkShipmentInTransit(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkShipmentInTransitCommand(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markShipmentInTransit.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmDelivery handles POST /api/v1/shipments/:id/confirmations.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	var req ConfirmDeliveryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	status := shipment.Received
	if req.Status == "issue" {
		status = shipment.ConfirmationIssue
	}

	cmd, err := commands.NewConfirmDeliveryCommand(shipmentID, req.ConfirmedBy, status, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}
	return nil
}
