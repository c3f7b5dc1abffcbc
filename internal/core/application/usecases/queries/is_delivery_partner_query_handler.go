package queries

import (
	"context"

	"gorm.io/gorm"
)

// IsDeliveryPartnerQueryHandler checks role membership against the
// delivery_partners table.
type IsDeliveryPartnerQueryHandler struct {
	db *gorm.DB
}

// NewIsDeliveryPartnerQueryHandler creates a handler for the membership check.
func NewIsDeliveryPartnerQueryHandler(db *gorm.DB) IsDeliveryPartnerQueryHandler {
	return IsDeliveryPartnerQueryHandler{db: db}
}

// Handle reports whether the queried address is a registered delivery partner.
func (h IsDeliveryPartnerQueryHandler) Handle(ctx context.Context, query IsDeliveryPartnerQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM delivery_partners WHERE address = ?
	`, query.Address().String()).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
