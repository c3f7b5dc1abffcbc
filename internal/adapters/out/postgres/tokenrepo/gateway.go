// Package tokenrepo implements the token gateway over two database tables:
// token_accounts (balances) and token_allowances (owner-to-spender grants).
// Bound to the unit of work's transaction, a failed transfer aborts the whole
// enclosing operation together with every state write it made.
package tokenrepo

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInsufficientFunds     = errors.New("insufficient token balance")
	ErrInsufficientAllowance = errors.New("insufficient token allowance")
)

// TokenAccountDTO is one token balance row.
type TokenAccountDTO struct {
	Address string `gorm:"type:varchar(42);primaryKey"`
	Balance int64
}

// TableName overrides GORM's default naming convention.
func (TokenAccountDTO) TableName() string {
	return "token_accounts"
}

// TokenAllowanceDTO is one owner-to-spender allowance grant.
type TokenAllowanceDTO struct {
	Owner   string `gorm:"type:varchar(42);primaryKey"`
	Spender string `gorm:"type:varchar(42);primaryKey"`
	Amount  int64
}

// TableName overrides GORM's default naming convention.
func (TokenAllowanceDTO) TableName() string {
	return "token_allowances"
}

// GormTokenGateway implements ports.TokenGateway. The escrow address is the
// custody account outbound transfers draw from.
type GormTokenGateway struct {
	db     *gorm.DB
	escrow kernel.Address
}

// NewGormTokenGateway creates a token gateway drawing on the given custody
// account.
func NewGormTokenGateway(db *gorm.DB, escrow kernel.Address) *GormTokenGateway {
	return &GormTokenGateway{db: db, escrow: escrow}
}

// TransferFrom pulls amount from the from-account into the to-account,
// consuming allowance the from-account granted to the escrow.
func (g *GormTokenGateway) TransferFrom(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	allowance, err := g.Allowance(ctx, from, g.escrow)
	if err != nil {
		return err
	}
	if allowance < amount {
		return ErrInsufficientAllowance
	}

	if err := g.debit(ctx, from, amount); err != nil {
		return err
	}
	if err := g.credit(ctx, to, amount); err != nil {
		return err
	}

	return g.db.WithContext(ctx).
		Model(&TokenAllowanceDTO{}).
		Where("owner = ? AND spender = ?", from.String(), g.escrow.String()).
		Update("amount", gorm.Expr("amount - ?", amount.Int64())).Error
}

// Transfer pushes amount from the escrow custody account to the to-account.
func (g *GormTokenGateway) Transfer(ctx context.Context, to kernel.Address, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	if err := g.debit(ctx, g.escrow, amount); err != nil {
		return err
	}
	return g.credit(ctx, to, amount)
}

// BalanceOf reports the token balance of an account, zero when the account
// has no row yet.
func (g *GormTokenGateway) BalanceOf(ctx context.Context, addr kernel.Address) (kernel.Amount, error) {
	var dto TokenAccountDTO
	err := g.db.WithContext(ctx).First(&dto, "address = ?", addr.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return kernel.Amount(dto.Balance), nil
}

// Allowance reports how much spender may pull from owner.
func (g *GormTokenGateway) Allowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	var dto TokenAllowanceDTO
	err := g.db.WithContext(ctx).
		First(&dto, "owner = ? AND spender = ?", owner.String(), spender.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return kernel.Amount(dto.Amount), nil
}

// Mint credits freshly issued tokens to an account. Test and seeding helper;
// the escrow itself never mints.
func (g *GormTokenGateway) Mint(ctx context.Context, addr kernel.Address, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	return g.credit(ctx, addr, amount)
}

// Approve sets the allowance owner grants to spender, replacing any previous
// grant.
func (g *GormTokenGateway) Approve(ctx context.Context, owner, spender kernel.Address, amount kernel.Amount) error {
	dto := TokenAllowanceDTO{
		Owner:   owner.String(),
		Spender: spender.String(),
		Amount:  amount.Int64(),
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "spender"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).
		Create(&dto).Error
}

func (g *GormTokenGateway) debit(ctx context.Context, addr kernel.Address, amount kernel.Amount) error {
	balance, err := g.BalanceOf(ctx, addr)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientFunds
	}

	return g.db.WithContext(ctx).
		Model(&TokenAccountDTO{}).
		Where("address = ?", addr.String()).
		Update("balance", gorm.Expr("balance - ?", amount.Int64())).Error
}

func (g *GormTokenGateway) credit(ctx context.Context, addr kernel.Address, amount kernel.Amount) error {
	dto := TokenAccountDTO{Address: addr.String(), Balance: amount.Int64()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: []clause.Assignment{{
				Column: clause.Column{Name: "balance"},
				Value:  gorm.Expr("token_accounts.balance + ?", amount.Int64()),
			}},
		}).
		Create(&dto).Error
}
