package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
)

func TestListEntitlementsUseCase_Execute(t *testing.T) {
	grant, err := entitlement.ReconstructEntitlement(5, 7, 3, 2, time.Now().UTC(), nil)
	require.NoError(t, err)

	entitlementRepo := &mockEntitlementRepository{
		GetByUserFunc: func(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
			assert.Equal(t, uint(7), userID)
			return []*entitlement.Entitlement{grant}, nil
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}

	useCase := NewListEntitlementsUseCase(entitlementRepo, catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListEntitlementsQuery{UserID: 7})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, uint(5), result[0].ID)
	assert.Equal(t, uint(3), result[0].CatalogItemID)
	assert.Equal(t, "Quality Report", result[0].CatalogItemName)
	assert.Equal(t, "/reports/quality", result[0].URLPath)
	assert.Equal(t, uint(2), result[0].GrantedBy)
}

func TestListEntitlementsUseCase_Execute_EmptyForNewUser(t *testing.T) {
	useCase := NewListEntitlementsUseCase(&mockEntitlementRepository{}, &mockCatalogRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListEntitlementsQuery{UserID: 7})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListEntitlementsUseCase_Execute_RequiresUserID(t *testing.T) {
	useCase := NewListEntitlementsUseCase(&mockEntitlementRepository{}, &mockCatalogRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListEntitlementsQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
}
