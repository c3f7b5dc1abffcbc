package queries

import (
	"context"

	"escrow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOwnerQueryHandler reads the owner address from the role registry.
type GetOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerQueryHandler creates a handler for the owner lookup.
func NewGetOwnerQueryHandler(db *gorm.DB) GetOwnerQueryHandler {
	return GetOwnerQueryHandler{db: db}
}

// Handle returns the registered owner address.
func (h GetOwnerQueryHandler) Handle(ctx context.Context, query GetOwnerQuery) (kernel.Address, error) {
	if err := query.Validate(); err != nil {
		return kernel.Address{}, err
	}
	return ownerOf(ctx, h.db)
}
