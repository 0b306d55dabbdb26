package mappers

import (
	"accesshub/internal/domain/catalog"
	"accesshub/internal/infrastructure/persistence/models"
)

// CatalogItemMapper handles the conversion between catalog items and persistence models.
type CatalogItemMapper interface {
	ToModel(item *catalog.Item) *models.CatalogItemModel
	ToDomain(model *models.CatalogItemModel) (*catalog.Item, error)
}

type CatalogItemMapperImpl struct{}

func NewCatalogItemMapper() CatalogItemMapper {
	return &CatalogItemMapperImpl{}
}

func (m *CatalogItemMapperImpl) ToModel(item *catalog.Item) *models.CatalogItemModel {
	return &models.CatalogItemModel{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
		URLPath:     item.URLPath(),
		IsActive:    item.IsActive(),
		CreatedAt:   item.CreatedAt().UnixMilli(),
	}
}

func (m *CatalogItemMapperImpl) ToDomain(model *models.CatalogItemModel) (*catalog.Item, error) {
	return catalog.ReconstructItem(
		model.ID,
		model.Name,
		model.Description,
		model.Category,
		model.URLPath,
		model.IsActive,
		convertMillisToTime(model.CreatedAt),
	)
}
