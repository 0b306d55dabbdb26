package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesshub/internal/domain/catalog"
	"accesshub/internal/shared/errors"
)

func TestCreateCatalogItemUseCase_Execute_Success(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		CreateFunc: func(ctx context.Context, item *catalog.Item) error {
			return item.SetID(9)
		},
	}

	useCase := NewCreateCatalogItemUseCase(catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateCatalogItemCommand{
		Name:        "Quality Report",
		Description: "Weekly quality metrics",
		Category:    "Reports",
		URLPath:     "/reports/quality",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(9), result.ItemID)
	assert.Equal(t, "Quality Report", result.Name)
}

func TestCreateCatalogItemUseCase_Execute_DuplicateName(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return true, nil
		},
	}

	useCase := NewCreateCatalogItemUseCase(catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateCatalogItemCommand{
		Name:        "Quality Report",
		Description: "Weekly quality metrics",
		Category:    "Reports",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateCatalogItemUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateCatalogItemCommand
	}{
		{"missing name", CreateCatalogItemCommand{Description: "d", Category: "c"}},
		{"missing description", CreateCatalogItemCommand{Name: "n", Category: "c"}},
		{"missing category", CreateCatalogItemCommand{Name: "n", Description: "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateCatalogItemUseCase(&mockCatalogRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
