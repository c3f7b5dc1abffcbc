package commands

import (
	"errors"

	"escrow/internal/pkg/guard"
)

var ErrSweepSettlementsCommandIsNotConstructed = errors.New(
	"SweepSettlementsCommand must be created via NewSweepSettlementsCommand constructor",
)

// SweepSettlementsCommand triggers a settlement sweep over delivered orders.
// Every delivered order whose refund window already elapsed gets closed and
// its amount credited to the owner settlement balance. The sweep runs on the
// platform's behalf, so there is no caller to authorize.
type SweepSettlementsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepSettlementsCommand creates a parameterless sweep command.
func NewSweepSettlementsCommand() SweepSettlementsCommand {
	return SweepSettlementsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepSettlementsCommand) Validate() error {
	return c.guard.Validate(ErrSweepSettlementsCommandIsNotConstructed)
}
