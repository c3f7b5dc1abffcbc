package commands

import (
	"context"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// AddDeliveryPartnerCommandHandler grants the delivery partner role.
// Owner-only: partners are onboarded by the platform, never self-registered.
type AddDeliveryPartnerCommandHandler struct {
	uowFactory UoWFactory
	clk        clock.Clock
}

// NewAddDeliveryPartnerCommandHandler creates a handler for partner
// onboarding.
func NewAddDeliveryPartnerCommandHandler(uowFactory UoWFactory, clk clock.Clock) AddDeliveryPartnerCommandHandler {
	return AddDeliveryPartnerCommandHandler{
		uowFactory: uowFactory,
		clk:        clk,
	}
}

// Handle records the partner grant and the DeliveryPartnerAdded event.
// Granting the role to an address that already holds it is a no-op that
// still succeeds.
func (h AddDeliveryPartnerCommandHandler) Handle(ctx context.Context, cmd AddDeliveryPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reg, err := loadRegistry(ctx, uow)
	if err != nil {
		return err
	}
	if err := requireOwner(reg, cmd.Caller()); err != nil {
		return err
	}

	alreadyPartner := reg.IsPartner(cmd.Partner())
	if err := reg.AddPartner(cmd.Partner()); err != nil {
		return err
	}

	if err := uow.RegistryRepository().AddPartner(ctx, cmd.Partner()); err != nil {
		return err
	}

	if !alreadyPartner {
		event := order.NewPartnerAddedEvent(cmd.Partner(), reg.Owner(), h.clk.Now())
		if err := uow.EventRepository().Append(ctx, event); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
