package ports

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
)

// TokenGateway wraps the external fungible-token ledger the escrow holds
// custody on. The core depends on this capability but does not implement it.
//
// A failed transfer must abort the entire enclosing operation; implementations
// participate in the unit of work's transaction so that no order state commits
// when a transfer fails.
type TokenGateway interface {
	// TransferFrom pulls amount from the from-account into the to-account,
	// consuming allowance granted by from to the escrow.
	TransferFrom(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error

	// Transfer pushes amount from the escrow's own custody account to the
	// to-account.
	Transfer(ctx context.Context, to kernel.Address, amount kernel.Amount) error

	// BalanceOf reports the token balance of an account.
	BalanceOf(ctx context.Context, addr kernel.Address) (kernel.Amount, error)

	// Allowance reports how much spender may pull from owner.
	Allowance(ctx context.Context, owner, spender kernel.Address) (kernel.Amount, error)
}
