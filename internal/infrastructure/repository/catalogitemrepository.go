package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"accesshub/internal/domain/catalog"
	"accesshub/internal/infrastructure/persistence/mappers"
	"accesshub/internal/infrastructure/persistence/models"
	"accesshub/internal/shared/db"
)

type CatalogItemRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogItemMapper
}

func NewCatalogItemRepository(db *gorm.DB) *CatalogItemRepository {
	return &CatalogItemRepository{
		db:     db,
		mapper: mappers.NewCatalogItemMapper(),
	}
}

func (r *CatalogItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}

	return item.SetID(model.ID)
}

func (r *CatalogItemRepository) GetByID(ctx context.Context, id uint) (*catalog.Item, error) {
	var model models.CatalogItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("catalog item not found")
		}
		return nil, fmt.Errorf("failed to find catalog item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CatalogItemRepository) List(ctx context.Context) ([]*catalog.Item, error) {
	return r.list(ctx, nil)
}

func (r *CatalogItemRepository) ListActive(ctx context.Context) ([]*catalog.Item, error) {
	active := true
	return r.list(ctx, &active)
}

func (r *CatalogItemRepository) list(ctx context.Context, active *bool) ([]*catalog.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.CatalogItemModel{}).Order("id ASC")
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	var modelList []models.CatalogItemModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}

	items := make([]*catalog.Item, 0, len(modelList))
	for i := range modelList {
		item, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *CatalogItemRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.CatalogItemModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check catalog item name: %w", err)
	}

	return count > 0, nil
}
