// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is the hex-encoded 32-byte order identifier; lifecycle timestamps
// stay NULL until the corresponding transition happened.
type OrderDTO struct {
	ID          string `gorm:"type:varchar(66);primaryKey"`
	Number      string `gorm:"type:varchar(64);index"`
	Customer    string `gorm:"type:varchar(42);index"`
	Amount      int64
	Status      int `gorm:"index"`
	CreatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time `gorm:"index"`
	ReturnedAt  *time.Time
	RefundedAt  *time.Time
	ClosedAt    *time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().String(),
		Number:      o.Number().String(),
		Customer:    o.Customer().String(),
		Amount:      o.Amount().Int64(),
		Status:      int(o.Status()),
		CreatedAt:   o.CreatedAt(),
		PaidAt:      optionalTime(o.PaidAt()),
		ShippedAt:   optionalTime(o.ShippedAt()),
		DeliveredAt: optionalTime(o.DeliveredAt()),
		ReturnedAt:  optionalTime(o.ReturnedAt()),
		RefundedAt:  optionalTime(o.RefundedAt()),
		ClosedAt:    optionalTime(o.ClosedAt()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.AddressFromString(dto.Customer)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewAmount(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, number, customer, amount, order.Status(dto.Status),
		dto.CreatedAt,
		timeOrZero(dto.PaidAt),
		timeOrZero(dto.ShippedAt),
		timeOrZero(dto.DeliveredAt),
		timeOrZero(dto.ReturnedAt),
		timeOrZero(dto.RefundedAt),
		timeOrZero(dto.ClosedAt),
	)
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t
	return &v
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
