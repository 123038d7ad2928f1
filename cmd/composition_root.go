package cmd

import (
	"log/slog"
	"time"

	"aims/internal/adapters/out/postgres"
	"aims/internal/adapters/out/postgres/productrepo"
	"aims/internal/core/application/usecases/commands"
	"aims/internal/core/application/usecases/queries"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/services"
	"aims/internal/core/ports"

	"gorm.io/gorm"
)

// Dependencies are the infrastructure adapters built in main.
type Dependencies struct {
	Locker    ports.Locker
	Payment   ports.PaymentGateway
	Publisher ports.EventPublisher
	Logger    *slog.Logger
	Now       func() time.Time
}

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	deps       Dependencies

	calculator services.FeeCalculator
	validator  services.DeliveryValidator
	assembler  services.OrderAssembler
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	policy services.DeliveryPolicy,
	location *time.Location,
	deps Dependencies,
) CompositionRoot {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		deps:       deps,
		calculator: services.NewFeeCalculator(policy),
		validator:  services.NewDeliveryValidator(policy, location, deps.Now),
		assembler:  services.NewOrderAssembler(deps.Payment, configs.PaymentTimeout, deps.Now),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.calculator, c.validator, c.assembler, c.deps.Logger)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.deps.Locker, c.deps.Now)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.deps.Locker, c.deps.Now)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.deps.Locker, c.deps.Now)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.deps.Publisher, c.deps.Now)
}

func (c *CompositionRoot) CreateQuoteCheckoutQueryHandler() queries.QuoteCheckoutQueryHandler {
	return queries.NewQuoteCheckoutQueryHandler(c.productReader(), c.calculator, c.validator)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.productReader())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// productReader reads products outside any transaction.
func (c *CompositionRoot) productReader() *productrepo.GormProductRepository {
	return productrepo.NewGormProductRepository(c.gormDB, readOnly{})
}

type readOnly struct{}

func (readOnly) TrackAggregate(kernel.UUID, any) {}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
