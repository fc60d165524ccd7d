package cmd

import (
	"lensdispatch/internal/adapters/out/postgres"
	"lensdispatch/internal/adapters/out/postgres/auditlog"
	"lensdispatch/internal/core/application/usecases/commands"
	"lensdispatch/internal/core/application/usecases/queries"
	"lensdispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	groupCache ports.DeliveryGroupCache
	activity   ports.ActivityLog
	resolver   commands.DeliveryGroupResolver
}

// NewCompositionRoot wires the adapters once; handler factories below hand
// out cheap per-request values. groupCache may be nil when no redis address
// is configured.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, groupCache ports.DeliveryGroupCache) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		groupCache: groupCache,
		activity:   auditlog.NewGormActivityLog(gormDB),
		resolver:   commands.NewDeliveryGroupResolver(groupCache),
	}
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f, c.resolver, c.activity)
}

func (c *CompositionRoot) CreateUpdateStoreAddressCommandHandler() commands.UpdateStoreAddressCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStoreAddressCommandHandler(f, c.resolver, c.activity)
}

func (c *CompositionRoot) CreateDeleteStoreCommandHandler() commands.DeleteStoreCommandHandler {
	var f commands.DeleteStoreUoWFactory = FuncDeleteStoreUoWFactory(func() commands.DeleteStoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteStoreCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateCreateBoxCommandHandler() commands.CreateBoxCommandHandler {
	var f commands.BoxUoWFactory = FuncBoxUoWFactory(func() commands.BoxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBoxCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPackOrderCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateMarkOrderPackedCommandHandler() commands.MarkOrderPackedCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPackedCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnOrderCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentIntakeUoWFactory = FuncShipmentIntakeUoWFactory(func() commands.ShipmentIntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateAttachBoxCommandHandler() commands.AttachBoxCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachBoxCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateDispatchShipmentCommandHandler() commands.DispatchShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchShipmentCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateMarkShipmentInTransitCommandHandler() commands.MarkShipmentInTransitCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkShipmentInTransitCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateReportStaleBoxesCommandHandler() commands.ReportStaleBoxesCommandHandler {
	var f commands.WatchdogUoWFactory = FuncWatchdogUoWFactory(func() commands.WatchdogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportStaleBoxesCommandHandler(f, c.activity)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoresInGroupQueryHandler() queries.GetStoresInGroupQueryHandler {
	return queries.NewGetStoresInGroupQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenShipmentsQueryHandler() queries.GetOpenShipmentsQueryHandler {
	return queries.NewGetOpenShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoxesAwaitingDispatchQueryHandler() queries.GetBoxesAwaitingDispatchQueryHandler {
	return queries.NewGetBoxesAwaitingDispatchQueryHandler(c.gormDB)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncDeleteStoreUoWFactory func() commands.DeleteStoreUoW

func (f FuncDeleteStoreUoWFactory) Create() commands.DeleteStoreUoW {
	return f()
}

type FuncBoxUoWFactory func() commands.BoxUoW

func (f FuncBoxUoWFactory) Create() commands.BoxUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncShipmentIntakeUoWFactory func() commands.ShipmentIntakeUoW

func (f FuncShipmentIntakeUoWFactory) Create() commands.ShipmentIntakeUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncWatchdogUoWFactory func() commands.WatchdogUoW

func (f FuncWatchdogUoWFactory) Create() commands.WatchdogUoW {
	return f()
}
