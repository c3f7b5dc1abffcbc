// Package eventrepo persists the append-only audit trail of committed state
// transitions. Rows are written in the same transaction as the state change
// they describe and are never updated.
package eventrepo

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderEventDTO is one audit trail row. OrderID and OrderNumber are zero
// values for registry-level events (partner added, withdrawal).
type OrderEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;uniqueIndex"`
	Name        string    `gorm:"type:varchar(40)"`
	OrderID     string    `gorm:"type:varchar(66);index"`
	OrderNumber string    `gorm:"type:varchar(64)"`
	Actor       string    `gorm:"type:varchar(42)"`
	Customer    string    `gorm:"type:varchar(42)"`
	Status      int
	Amount      int64
	OccurredAt  time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// GormEventRepository implements ports.EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append stores one event with a fresh surrogate id. Seq is assigned by the
// database and pins the append order even when occurrence times collide.
func (r *GormEventRepository) Append(ctx context.Context, event order.Event) error {
	dto := OrderEventDTO{
		ID:          uuid.New(),
		Name:        string(event.Name),
		OrderID:     event.OrderID.String(),
		OrderNumber: event.OrderNumber.String(),
		Actor:       event.Actor.String(),
		Customer:    event.Customer.String(),
		Status:      int(event.Status),
		Amount:      event.Amount.Int64(),
		OccurredAt:  event.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrderID retrieves all events recorded for one order, in append order.
func (r *GormEventRepository) ListByOrderID(ctx context.Context, id kernel.OrderID) ([]order.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "order_id = ?", id.String()).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func toDomain(dto OrderEventDTO) (order.Event, error) {
	orderID, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return order.Event{}, err
	}
	actor, err := kernel.AddressFromString(dto.Actor)
	if err != nil {
		return order.Event{}, err
	}
	customer, err := kernel.AddressFromString(dto.Customer)
	if err != nil {
		return order.Event{}, err
	}

	return order.Event{
		Name:        order.EventName(dto.Name),
		OrderID:     orderID,
		OrderNumber: kernel.OrderNumber(dto.OrderNumber),
		Actor:       actor,
		Customer:    customer,
		Status:      order.Status(dto.Status),
		Amount:      kernel.Amount(dto.Amount),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
