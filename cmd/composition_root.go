package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"escrow/internal/adapters/out/postgres"
	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/services"
	"escrow/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	escrow       kernel.Address
	refundWindow time.Duration
	idGen        *services.OrderIDGenerator
	clk          clock.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	escrow, err := kernel.AddressFromString(config.EscrowAddress)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid ESCROW_ADDRESS: %w", err)
	}

	seconds, err := strconv.ParseInt(config.RefundWindowSeconds, 10, 64)
	if err != nil || seconds <= 0 {
		return CompositionRoot{}, fmt.Errorf("invalid REFUND_WINDOW_SECONDS: %q", config.RefundWindowSeconds)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB, escrow),
		escrow:       escrow,
		refundWindow: time.Duration(seconds) * time.Second,
		idGen:        services.NewOrderIDGenerator(),
		clk:          clock.NewSystem(),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.idGen, c.clk)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f, c.escrow, c.clk)
}

func (c *CompositionRoot) CreateMarkOrderAsShippedCommandHandler() commands.MarkOrderAsShippedCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderAsShippedCommandHandler(f, c.clk)
}

func (c *CompositionRoot) CreateMarkOrderAsDeliveredCommandHandler() commands.MarkOrderAsDeliveredCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderAsDeliveredCommandHandler(f, c.clk)
}

func (c *CompositionRoot) CreateMarkOrderAsReturnedCommandHandler() commands.MarkOrderAsReturnedCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderAsReturnedCommandHandler(f, c.refundWindow, c.clk)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundOrderCommandHandler(f, c.refundWindow, c.clk)
}

func (c *CompositionRoot) CreateUpdateOwnersBalanceCommandHandler() commands.UpdateOwnersBalanceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOwnersBalanceCommandHandler(f, c.refundWindow, c.clk)
}

func (c *CompositionRoot) CreateSweepSettlementsCommandHandler() commands.SweepSettlementsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepSettlementsCommandHandler(f, c.refundWindow, c.clk)
}

func (c *CompositionRoot) CreateWithdrawOwnersBalanceCommandHandler() commands.WithdrawOwnersBalanceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewWithdrawOwnersBalanceCommandHandler(f, c.clk)
}

func (c *CompositionRoot) CreateAddDeliveryPartnerCommandHandler() commands.AddDeliveryPartnerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDeliveryPartnerCommandHandler(f, c.clk)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnersBalanceQueryHandler() queries.GetOwnersBalanceQueryHandler {
	return queries.NewGetOwnersBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsDeliveryPartnerQueryHandler() queries.IsDeliveryPartnerQueryHandler {
	return queries.NewIsDeliveryPartnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerQueryHandler() queries.GetOwnerQueryHandler {
	return queries.NewGetOwnerQueryHandler(c.gormDB)
}

// SeedOwner writes the platform owner into the role registry when it is
// empty. An already-seeded registry is left untouched.
func (c *CompositionRoot) SeedOwner(ctx context.Context, ownerAddress string) error {
	owner, err := kernel.AddressFromString(ownerAddress)
	if err != nil {
		return fmt.Errorf("invalid OWNER_ADDRESS: %w", err)
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RegistryRepository().EnsureOwner(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
