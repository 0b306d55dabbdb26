package models

// AccessRequestModel is the ledger row for an access request. The
// composite index on (user_id, catalog_item_id, status) backs the
// pending-duplicate check; the version column backs optimistic locking on
// review.
type AccessRequestModel struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;index:idx_requests_user_item_status"`
	CatalogItemID    uint   `gorm:"not null;index:idx_requests_user_item_status"`
	Justification    string `gorm:"type:text;not null"`
	Status           string `gorm:"size:20;not null;index;index:idx_requests_user_item_status"`
	RequestedAt      int64  `gorm:"not null;index"`
	ReviewedAt       *int64
	ReviewerID       *uint  `gorm:"index"`
	ReviewerComments string `gorm:"type:text"`
	Version          int    `gorm:"not null;default:1"`
}

func (AccessRequestModel) TableName() string {
	return "access_requests"
}
