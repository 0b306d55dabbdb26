package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"accesshub/internal/domain/entitlement"
	"accesshub/internal/infrastructure/persistence/mappers"
	"accesshub/internal/infrastructure/persistence/models"
	"accesshub/internal/shared/db"
)

type EntitlementRepository struct {
	db     *gorm.DB
	mapper mappers.EntitlementMapper
}

func NewEntitlementRepository(db *gorm.DB) *EntitlementRepository {
	return &EntitlementRepository{
		db:     db,
		mapper: mappers.NewEntitlementMapper(),
	}
}

// Create inserts a grant. ON CONFLICT DO NOTHING against the unique
// (user_id, catalog_item_id) index makes re-granting idempotent.
func (r *EntitlementRepository) Create(ctx context.Context, e *entitlement.Entitlement) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "catalog_item_id"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create entitlement: %w", result.Error)
	}

	if result.RowsAffected > 0 && e.ID() == 0 {
		return e.SetID(model.ID)
	}

	return nil
}

func (r *EntitlementRepository) Exists(ctx context.Context, userID, catalogItemID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.EntitlementModel{}).
		Where("user_id = ? AND catalog_item_id = ?", userID, catalogItemID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check entitlement: %w", err)
	}

	return count > 0, nil
}

func (r *EntitlementRepository) GetByUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.EntitlementModel
	if err := tx.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	grants := make([]*entitlement.Entitlement, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		grants = append(grants, e)
	}

	return grants, nil
}

func (r *EntitlementRepository) ListItemIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemIDs []uint
	if err := tx.
		Model(&models.EntitlementModel{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("catalog_item_id", &itemIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list entitlement item IDs: %w", err)
	}

	return itemIDs, nil
}
