package order

import (
	"time"

	"escrow/internal/core/domain/model/kernel"
)

// EventName identifies a domain event kind. One event is emitted per
// successful state transition; events form the durable audit trail and are
// never written for a rejected operation.
type EventName string

const (
	EventOrderCreated          EventName = "OrderCreated"
	EventOrderPaid             EventName = "OrderPaid"
	EventOrderShipped          EventName = "OrderShipped"
	EventOrderDelivered        EventName = "OrderDelivered"
	EventOrderReturned         EventName = "OrderReturned"
	EventOrderRefunded         EventName = "OrderRefunded"
	EventOrderClosed           EventName = "OrderClosed"
	EventDeliveryPartnerAdded  EventName = "DeliveryPartnerAdded"
	EventOwnerBalanceWithdrawn EventName = "OwnerBalanceWithdrawn"
)

// Event is an immutable record of a committed state transition. OrderID and
// OrderNumber are zero for registry-level events (partner added, withdrawal).
type Event struct {
	Name        EventName
	OrderID     kernel.OrderID
	OrderNumber kernel.OrderNumber
	Actor       kernel.Address
	Customer    kernel.Address
	Status      Status
	Amount      kernel.Amount
	OccurredAt  time.Time
}

// NewEvent records a transition on an order, performed by actor.
func NewEvent(name EventName, o *Order, actor kernel.Address, at time.Time) Event {
	return Event{
		Name:        name,
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		Actor:       actor,
		Customer:    o.Customer(),
		Status:      o.Status(),
		Amount:      o.Amount(),
		OccurredAt:  at.UTC(),
	}
}

// NewPartnerAddedEvent records the owner registering a delivery partner.
func NewPartnerAddedEvent(partner, owner kernel.Address, at time.Time) Event {
	return Event{
		Name:       EventDeliveryPartnerAdded,
		Actor:      owner,
		Customer:   partner,
		OccurredAt: at.UTC(),
	}
}

// NewWithdrawalEvent records the owner withdrawing the settlement balance.
func NewWithdrawalEvent(owner kernel.Address, amount kernel.Amount, at time.Time) Event {
	return Event{
		Name:       EventOwnerBalanceWithdrawn,
		Actor:      owner,
		Amount:     amount,
		OccurredAt: at.UTC(),
	}
}
