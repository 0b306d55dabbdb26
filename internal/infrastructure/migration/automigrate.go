package migration

import (
	"accesshub/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CatalogItemModel{},
		&models.AccessRequestModel{},
		&models.EntitlementModel{},
	}
}
