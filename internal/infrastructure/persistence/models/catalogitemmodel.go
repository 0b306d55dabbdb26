package models

type CatalogItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:100;not null;index"`
	URLPath     string `gorm:"size:255"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CatalogItemModel) TableName() string {
	return "catalog_items"
}
