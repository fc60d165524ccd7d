// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lensdispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryGroupRepoFactory provides access to delivery group repository within a transaction.
	DeliveryGroupRepoFactory interface {
		DeliveryGroupRepository() ports.DeliveryGroupRepository
	}

	// StoreRepoFactory provides access to store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// BoxRepoFactory provides access to box repository within a transaction.
	BoxRepoFactory interface {
		BoxRepository() ports.BoxRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ShipmentRepoFactory provides access to shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ReturnRepoFactory provides access to return record repository within a transaction.
	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// StoreUoW manages transactions for store registration and relocation.
	// Covers the store itself, the delivery group resolution it triggers,
	// and the optional courier reference check.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
		DeliveryGroupRepoFactory
		CourierRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// DeleteStoreUoW manages transactions for store removal.
	// The order repository is used to verify nothing references the store.
	DeleteStoreUoW interface {
		TxManager
		StoreRepoFactory
		OrderRepoFactory
	}

	// DeleteStoreUoWFactory creates new store removal unit of work instances.
	DeleteStoreUoWFactory interface {
		Create() DeleteStoreUoW
	}

	// BoxUoW manages transactions for box creation.
	// The delivery group repository is used to verify the target group exists.
	BoxUoW interface {
		TxManager
		BoxRepoFactory
		DeliveryGroupRepoFactory
	}

	// BoxUoWFactory creates new box unit of work instances.
	BoxUoWFactory interface {
		Create() BoxUoW
	}

	// PackingUoW manages transactions for the packing workflow.
	// Coordinates orders, their box, and the store that pins the box's
	// delivery group.
	PackingUoW interface {
		TxManager
		OrderRepoFactory
		BoxRepoFactory
		StoreRepoFactory
	}

	// PackingUoWFactory creates new packing unit of work instances.
	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// ReturnUoW manages transactions for order returns.
	// Covers the order, the box projection it may trigger, and the
	// appended return record.
	ReturnUoW interface {
		TxManager
		OrderRepoFactory
		BoxRepoFactory
		ReturnRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// ShipmentIntakeUoW manages transactions for shipment creation.
	// The courier repository is used to verify the carrier exists.
	ShipmentIntakeUoW interface {
		TxManager
		ShipmentRepoFactory
		CourierRepoFactory
	}

	// ShipmentIntakeUoWFactory creates new shipment intake unit of work instances.
	ShipmentIntakeUoWFactory interface {
		Create() ShipmentIntakeUoW
	}

	// ManifestUoW manages transactions for manifest changes.
	// Covers the shipment and the box being attached.
	ManifestUoW interface {
		TxManager
		ShipmentRepoFactory
		BoxRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// ShipmentUoW manages transactions for shipment-only lifecycle operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// WatchdogUoW manages transactions for the stale packing sweep.
	WatchdogUoW interface {
		TxManager
		BoxRepoFactory
	}

	// WatchdogUoWFactory creates new watchdog unit of work instances.
	WatchdogUoWFactory interface {
		Create() WatchdogUoW
	}
)
