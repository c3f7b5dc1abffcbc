package queries

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderEventsQueryHandler reads the audit trail of one order,
// oldest entry first.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for audit trail reads.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle returns the events recorded for the order, in append order.
// Returns errs.ErrObjectNotFound when the id resolves to no order.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, h.db, query.Caller()); err != nil {
		return nil, err
	}

	var known int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE id = ?
	`, query.OrderID().String()).Scan(&known).Error
	if err != nil {
		return nil, err
	}
	if known == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			actor,
			status,
			amount,
			occurred_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY seq
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetOrderEventsQueryResponse, 0)
	for rows.Next() {
		var (
			name       string
			actor      string
			status     int
			amount     int64
			occurredAt time.Time
		)
		if err := rows.Scan(&name, &actor, &status, &amount, &occurredAt); err != nil {
			return nil, err
		}

		actorAddr, err := kernel.AddressFromString(actor)
		if err != nil {
			return nil, err
		}

		events = append(events, GetOrderEventsQueryResponse{
			Name:       order.EventName(name),
			Actor:      actorAddr,
			Status:     order.Status(status),
			Amount:     kernel.Amount(amount),
			OccurredAt: occurredAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
