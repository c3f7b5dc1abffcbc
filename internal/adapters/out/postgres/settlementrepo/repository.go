// Package settlementrepo persists the single owner settlement balance row.
package settlementrepo

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/registry"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const balanceRowID = int16(1)

// SettlementBalanceDTO is the single-row table holding the owner balance.
type SettlementBalanceDTO struct {
	ID      int16 `gorm:"primaryKey"`
	Balance int64
}

// TableName overrides GORM's default naming convention.
func (SettlementBalanceDTO) TableName() string {
	return "settlement_balances"
}

// GormSettlementRepository implements ports.SettlementRepository using GORM.
type GormSettlementRepository struct {
	db *gorm.DB
}

// NewGormSettlementRepository creates a new GORM settlement repository.
func NewGormSettlementRepository(db *gorm.DB) *GormSettlementRepository {
	return &GormSettlementRepository{db: db}
}

// Get loads the current balance. A missing row reads as zero: nothing was
// ever settled.
func (r *GormSettlementRepository) Get(ctx context.Context) (*registry.SettlementBalance, error) {
	var dto SettlementBalanceDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", balanceRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return registry.RestoreSettlementBalance(0)
	}
	if err != nil {
		return nil, err
	}

	return registry.RestoreSettlementBalance(kernel.Amount(dto.Balance))
}

// Save persists the balance, creating the row on first settlement.
func (r *GormSettlementRepository) Save(ctx context.Context, balance *registry.SettlementBalance) error {
	dto := SettlementBalanceDTO{ID: balanceRowID, Balance: balance.Balance().Int64()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance"}),
		}).
		Create(&dto).Error
}
