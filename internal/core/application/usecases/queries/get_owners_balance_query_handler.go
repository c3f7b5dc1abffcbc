package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetOwnersBalanceQueryHandler reads the settlement balance row.
type GetOwnersBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnersBalanceQueryHandler creates a handler for the balance read.
func NewGetOwnersBalanceQueryHandler(db *gorm.DB) GetOwnersBalanceQueryHandler {
	return GetOwnersBalanceQueryHandler{db: db}
}

// Handle returns the accumulated settlement balance. A missing row means no
// order was ever settled, which reads as zero.
func (h GetOwnersBalanceQueryHandler) Handle(ctx context.Context, query GetOwnersBalanceQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	if err := requireOwner(ctx, h.db, query.Caller()); err != nil {
		return 0, err
	}

	var balance int64
	row := h.db.WithContext(ctx).Raw(`SELECT balance FROM settlement_balances LIMIT 1`).Row()
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return balance, nil
}
