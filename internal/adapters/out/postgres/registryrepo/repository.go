package registryrepo

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/registry"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// registryRowID pins the owner to one well-known row.
const registryRowID = int16(1)

// GormRegistryRepository implements ports.RegistryRepository using GORM.
type GormRegistryRepository struct {
	db *gorm.DB
}

// NewGormRegistryRepository creates a new GORM registry repository.
func NewGormRegistryRepository(db *gorm.DB) *GormRegistryRepository {
	return &GormRegistryRepository{db: db}
}

// EnsureOwner seeds the owner row when the registry is empty. The owner is
// fixed at deployment; an existing row is never overwritten.
func (r *GormRegistryRepository) EnsureOwner(ctx context.Context, owner kernel.Address) error {
	if err := owner.Validate(); err != nil {
		return err
	}

	dto := RoleRegistryDTO{ID: registryRowID, Owner: owner.String()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Get loads the full role registry.
func (r *GormRegistryRepository) Get(ctx context.Context) (*registry.RoleRegistry, error) {
	var dto RoleRegistryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", registryRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("owner", "role_registry")
		}
		return nil, err
	}

	owner, err := kernel.AddressFromString(dto.Owner)
	if err != nil {
		return nil, err
	}

	var partnerDTOs []DeliveryPartnerDTO
	if err := r.db.WithContext(ctx).Find(&partnerDTOs).Error; err != nil {
		return nil, err
	}

	partners := make([]kernel.Address, 0, len(partnerDTOs))
	for _, p := range partnerDTOs {
		addr, addrErr := kernel.AddressFromString(p.Address)
		if addrErr != nil {
			return nil, addrErr
		}
		partners = append(partners, addr)
	}

	return registry.RestoreRoleRegistry(owner, partners)
}

// AddPartner persists a delivery-partner registration. Re-adding an existing
// partner is a no-op.
func (r *GormRegistryRepository) AddPartner(ctx context.Context, partner kernel.Address) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	dto := DeliveryPartnerDTO{Address: partner.String()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
