// Package queries contains the read-side handlers of the escrow ledger.
// Query handlers read straight off the database, bypassing the aggregates:
// reads take no locks, mutate nothing, and shape their own response types.
package queries

import (
	"context"
	"database/sql"
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// ownerOf reads the registered owner address. The registry is seeded at
// startup, so an empty table is a deployment fault, not a caller error.
func ownerOf(ctx context.Context, db *gorm.DB) (kernel.Address, error) {
	var raw string
	row := db.WithContext(ctx).Raw(`SELECT owner FROM role_registry LIMIT 1`).Row()
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.Address{}, errs.NewObjectNotFoundError("owner", "role_registry")
		}
		return kernel.Address{}, err
	}
	return kernel.AddressFromString(raw)
}

// requireOwner rejects callers other than the registered owner.
func requireOwner(ctx context.Context, db *gorm.DB, caller kernel.Address) error {
	owner, err := ownerOf(ctx, db)
	if err != nil {
		return err
	}
	if !owner.IsEqual(caller) {
		return errs.NewNotAuthorizedError("owner", caller.String())
	}
	return nil
}
