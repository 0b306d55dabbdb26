package usecases

import (
	"context"
	"time"

	"accesshub/internal/domain/catalog"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type CreateCatalogItemCommand struct {
	Name        string
	Description string
	Category    string
	URLPath     string
}

type CreateCatalogItemResult struct {
	ItemID    uint
	Name      string
	CreatedAt string
}

type CreateCatalogItemUseCase struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewCreateCatalogItemUseCase(catalogRepo catalog.Repository, logger logger.Interface) *CreateCatalogItemUseCase {
	return &CreateCatalogItemUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *CreateCatalogItemUseCase) Execute(ctx context.Context, cmd CreateCatalogItemCommand) (*CreateCatalogItemResult, error) {
	uc.logger.Infow("executing create catalog item use case", "name", cmd.Name)

	item, err := catalog.NewItem(cmd.Name, cmd.Description, cmd.Category, cmd.URLPath)
	if err != nil {
		uc.logger.Warnw("invalid catalog item", "name", cmd.Name, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.catalogRepo.ExistsByName(ctx, item.Name())
	if err != nil {
		uc.logger.Errorw("failed to check catalog item name", "name", item.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create catalog item")
	}
	if exists {
		return nil, errors.NewConflictError("a catalog item with this name already exists")
	}

	if err := uc.catalogRepo.Create(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a catalog item with this name already exists")
		}
		uc.logger.Errorw("failed to create catalog item", "name", item.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create catalog item")
	}

	uc.logger.Infow("catalog item created", "item_id", item.ID(), "name", item.Name())

	return &CreateCatalogItemResult{
		ItemID:    item.ID(),
		Name:      item.Name(),
		CreatedAt: item.CreatedAt().Format(time.RFC3339),
	}, nil
}
