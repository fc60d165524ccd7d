package http

import "time"

// Request DTOs. Bound from JSON and checked by the validator before any
// command is constructed; the domain runs its own validation on top.

type CreateCourierRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateStoreRequest struct {
	Code       string  `json:"code" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Address    string  `json:"address" validate:"required"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Contact    string  `json:"contact"`
	CourierID  *string `json:"courier_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateStoreAddressRequest struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type CreateBoxRequest struct {
	DispatchDate    time.Time `json:"dispatch_date" validate:"required"`
	DeliveryGroupID string    `json:"delivery_group_id" validate:"required,uuid"`
}

type PackOrderRequest struct {
	CustomerRef string    `json:"customer_ref" validate:"required"`
	StoreCode   string    `json:"store_code" validate:"required"`
	BoxID       string    `json:"box_id" validate:"required,uuid"`
	OrderDate   time.Time `json:"order_date" validate:"required"`
}

type ReturnOrderRequest struct {
	Reason     string `json:"reason"`
	ReturnedBy string `json:"returned_by" validate:"required"`
}

type CreateShipmentRequest struct {
	DocketNumber string    `json:"docket_number" validate:"required"`
	CourierID    string    `json:"courier_id" validate:"required,uuid"`
	ShipmentDate time.Time `json:"shipment_date" validate:"required"`
}

type AttachBoxRequest struct {
	BoxID string `json:"box_id" validate:"required,uuid"`
}

type ConfirmDeliveryRequest struct {
	ConfirmedBy string `json:"confirmed_by" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=received issue"`
	Notes       string `json:"notes"`
}

// Response DTOs.

type CreatedResponse struct {
	ID string `json:"id"`
}

type StoreResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Contact    string `json:"contact"`
}

type StoreDetailResponse struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`
	Contact         string `json:"contact"`
	DeliveryGroupID string `json:"delivery_group_id"`
}

type ShipmentResponse struct {
	ID           string    `json:"id"`
	DocketNumber string    `json:"docket_number"`
	CourierName  string    `json:"courier_name"`
	ShipmentDate time.Time `json:"shipment_date"`
	Status       string    `json:"status"`
	BoxCount     int       `json:"box_count"`
}

type BoxResponse struct {
	ID              string    `json:"id"`
	DispatchDate    time.Time `json:"dispatch_date"`
	DeliveryGroupID string    `json:"delivery_group_id"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
