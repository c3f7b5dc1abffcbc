package queries

import (
	"context"

	"escrow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler lists all non-terminal orders from the database.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for the open-order listing.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle returns every open order, oldest first. Orders in Refunded or Closed
// status are excluded; they left the open set for good.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, h.db, query.Caller()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer,
			amount,
			status,
			created_at,
			paid_at,
			shipped_at,
			delivered_at,
			returned_at,
			refunded_at,
			closed_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, int(order.Refunded), int(order.Closed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
