package mappers

import (
	"encoding/json"
	"fmt"

	"accesshub/internal/domain/entitlement"
	"accesshub/internal/infrastructure/persistence/models"
)

// EntitlementMapper handles the conversion between entitlements and persistence models.
type EntitlementMapper interface {
	ToModel(e *entitlement.Entitlement) (*models.EntitlementModel, error)
	ToDomain(model *models.EntitlementModel) (*entitlement.Entitlement, error)
}

type EntitlementMapperImpl struct{}

func NewEntitlementMapper() EntitlementMapper {
	return &EntitlementMapperImpl{}
}

func (m *EntitlementMapperImpl) ToModel(e *entitlement.Entitlement) (*models.EntitlementModel, error) {
	model := &models.EntitlementModel{
		ID:            e.ID(),
		UserID:        e.UserID(),
		CatalogItemID: e.CatalogItemID(),
		GrantedBy:     e.GrantedBy(),
		GrantedAt:     e.GrantedAt().UnixMilli(),
	}

	if len(e.Metadata()) > 0 {
		metaJSON, err := json.Marshal(e.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entitlement metadata: %w", err)
		}
		model.Metadata = metaJSON
	}

	return model, nil
}

func (m *EntitlementMapperImpl) ToDomain(model *models.EntitlementModel) (*entitlement.Entitlement, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entitlement metadata (id=%d): %w", model.ID, err)
		}
	}

	return entitlement.ReconstructEntitlement(
		model.ID,
		model.UserID,
		model.CatalogItemID,
		model.GrantedBy,
		convertMillisToTime(model.GrantedAt),
		metadata,
	)
}
