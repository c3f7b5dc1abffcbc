package registry

import (
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/errs"
)

// SettlementBalance is the single running total of funds owed to the platform
// owner. It is credited only by the settlement sweep, once per closed order,
// and zeroed atomically by a withdrawal.
type SettlementBalance struct {
	balance kernel.Amount
}

// RestoreSettlementBalance reconstructs the balance from persistence.
// A zero balance is valid here, unlike order and transfer amounts.
func RestoreSettlementBalance(balance kernel.Amount) (*SettlementBalance, error) {
	if balance < 0 {
		return nil, errs.NewValueIsInvalidError("settlement balance")
	}
	return &SettlementBalance{balance: balance}, nil
}

// Balance returns the current accumulated total.
func (s *SettlementBalance) Balance() kernel.Amount {
	return s.balance
}

// Credit adds the amount of a closed order to the balance.
func (s *SettlementBalance) Credit(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	s.balance += amount
	return nil
}

// Withdraw empties the balance and returns the withdrawn amount.
// Rejects a zero balance with ErrNothingToWithdraw.
func (s *SettlementBalance) Withdraw() (kernel.Amount, error) {
	if s.balance == 0 {
		return 0, errs.ErrNothingToWithdraw
	}

	amount := s.balance
	s.balance = 0
	return amount, nil
}
