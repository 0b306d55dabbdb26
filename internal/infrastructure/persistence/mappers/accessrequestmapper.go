package mappers

import (
	"time"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/infrastructure/persistence/models"
)

// AccessRequestMapper handles the conversion between access requests and persistence models.
type AccessRequestMapper interface {
	ToModel(r *accessrequest.AccessRequest) *models.AccessRequestModel
	ToDomain(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error)
}

type AccessRequestMapperImpl struct{}

func NewAccessRequestMapper() AccessRequestMapper {
	return &AccessRequestMapperImpl{}
}

func (m *AccessRequestMapperImpl) ToModel(r *accessrequest.AccessRequest) *models.AccessRequestModel {
	model := &models.AccessRequestModel{
		ID:               r.ID(),
		UserID:           r.UserID(),
		CatalogItemID:    r.CatalogItemID(),
		Justification:    r.Justification(),
		Status:           r.Status().String(),
		RequestedAt:      r.RequestedAt().UnixMilli(),
		ReviewerID:       r.ReviewerID(),
		ReviewerComments: r.ReviewerComments(),
		Version:          r.Version(),
	}

	if r.ReviewedAt() != nil {
		reviewedAt := r.ReviewedAt().UnixMilli()
		model.ReviewedAt = &reviewedAt
	}

	return model
}

func (m *AccessRequestMapperImpl) ToDomain(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error) {
	var reviewedAt *time.Time
	if model.ReviewedAt != nil {
		t := convertMillisToTime(*model.ReviewedAt)
		reviewedAt = &t
	}

	return accessrequest.ReconstructAccessRequest(
		model.ID,
		model.UserID,
		model.CatalogItemID,
		model.Justification,
		accessrequest.Status(model.Status),
		convertMillisToTime(model.RequestedAt),
		reviewedAt,
		model.ReviewerID,
		model.ReviewerComments,
		model.Version,
	)
}
