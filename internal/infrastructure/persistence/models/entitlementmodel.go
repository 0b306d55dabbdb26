package models

import "gorm.io/datatypes"

// EntitlementModel stores granted access. The unique index on
// (user_id, catalog_item_id) makes duplicate grants impossible at the
// storage layer regardless of application checks.
type EntitlementModel struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"not null;uniqueIndex:idx_entitlements_user_item"`
	CatalogItemID uint `gorm:"not null;uniqueIndex:idx_entitlements_user_item"`
	GrantedBy     uint `gorm:"not null"`
	GrantedAt     int64 `gorm:"not null"`
	Metadata      datatypes.JSON
}

func (EntitlementModel) TableName() string {
	return "entitlements"
}
