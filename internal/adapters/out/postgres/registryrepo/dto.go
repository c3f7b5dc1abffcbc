// Package registryrepo persists the role registry: the single owner row and
// the delivery-partner set.
package registryrepo

// RoleRegistryDTO is the single-row table holding the owner address.
type RoleRegistryDTO struct {
	ID    int16  `gorm:"primaryKey"`
	Owner string `gorm:"type:varchar(42)"`
}

// TableName overrides GORM's default naming convention.
func (RoleRegistryDTO) TableName() string {
	return "role_registry"
}

// DeliveryPartnerDTO is one registered delivery partner address.
type DeliveryPartnerDTO struct {
	Address string `gorm:"type:varchar(42);primaryKey"`
}

// TableName overrides GORM's default naming convention.
func (DeliveryPartnerDTO) TableName() string {
	return "delivery_partners"
}
