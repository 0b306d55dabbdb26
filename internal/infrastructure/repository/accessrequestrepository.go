package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/infrastructure/persistence/mappers"
	"accesshub/internal/infrastructure/persistence/models"
	"accesshub/internal/shared/db"
)

type AccessRequestRepository struct {
	db     *gorm.DB
	mapper mappers.AccessRequestMapper
}

func NewAccessRequestRepository(db *gorm.DB) *AccessRequestRepository {
	return &AccessRequestRepository{
		db:     db,
		mapper: mappers.NewAccessRequestMapper(),
	}
}

func (r *AccessRequestRepository) Save(ctx context.Context, req *accessrequest.AccessRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save access request: %w", err)
	}

	return req.SetID(model.ID)
}

// Update persists a reviewed request. The WHERE clause matches the version
// the aggregate was loaded with (the review bumped the in-memory version by
// one), so a concurrent review that already bumped the stored row makes
// this a no-op and the race surfaces as ErrAlreadyReviewed.
func (r *AccessRequestRepository) Update(ctx context.Context, req *accessrequest.AccessRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccessRequestModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":            model.Status,
			"reviewed_at":       model.ReviewedAt,
			"reviewer_id":       model.ReviewerID,
			"reviewer_comments": model.ReviewerComments,
			"version":           model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update access request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return accessrequest.ErrAlreadyReviewed
	}

	return nil
}

func (r *AccessRequestRepository) GetByID(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
	var model models.AccessRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("access request not found")
		}
		return nil, fmt.Errorf("failed to find access request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccessRequestRepository) ExistsPending(ctx context.Context, userID, catalogItemID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AccessRequestModel{}).
		Where("user_id = ? AND catalog_item_id = ? AND status = ?",
			userID, catalogItemID, accessrequest.StatusPending.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check pending request: %w", err)
	}

	return count > 0, nil
}

func (r *AccessRequestRepository) ListByStatus(ctx context.Context, status accessrequest.Status) ([]*accessrequest.AccessRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.AccessRequestModel
	if err := tx.
		Where("status = ?", status.String()).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *AccessRequestRepository) ListByUser(ctx context.Context, userID uint) ([]*accessrequest.AccessRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.AccessRequestModel
	if err := tx.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *AccessRequestRepository) toDomainList(modelList []models.AccessRequestModel) ([]*accessrequest.AccessRequest, error) {
	requests := make([]*accessrequest.AccessRequest, 0, len(modelList))
	for i := range modelList {
		req, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
