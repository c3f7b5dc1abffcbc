package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row and maps it to the response model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order addressed by the query id.
// Returns errs.ErrObjectNotFound when no such order exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err := requireOwner(ctx, h.db, query.Caller()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	return resp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (GetOrderQueryResponse, error) {
	var (
		resp        GetOrderQueryResponse
		id          string
		number      string
		customer    string
		amount      int64
		status      int
		createdAt   time.Time
		paidAt      sql.NullTime
		shippedAt   sql.NullTime
		deliveredAt sql.NullTime
		returnedAt  sql.NullTime
		refundedAt  sql.NullTime
		closedAt    sql.NullTime
	)

	if err := row.Scan(
		&id, &number, &customer, &amount, &status, &createdAt,
		&paidAt, &shippedAt, &deliveredAt, &returnedAt, &refundedAt, &closedAt,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.OrderIDFromString(id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	customerAddr, err := kernel.AddressFromString(customer)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderNumber, err := kernel.NewOrderNumber(number)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderAmount, err := kernel.NewAmount(amount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = orderID
	resp.Number = orderNumber
	resp.Customer = customerAddr
	resp.Amount = orderAmount
	resp.Status = order.Status(status)
	resp.CreatedAt = createdAt
	resp.PaidAt = nullableTime(paidAt)
	resp.ShippedAt = nullableTime(shippedAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.ReturnedAt = nullableTime(returnedAt)
	resp.RefundedAt = nullableTime(refundedAt)
	resp.ClosedAt = nullableTime(closedAt)
	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
