package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accesshub/internal/infrastructure/persistence/models"
	"accesshub/internal/shared/logger"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func setupSeedDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.CatalogItemModel{})
	require.NoError(t, err)

	return db
}

func seedFixture() *SeedFile {
	return &SeedFile{
		Users: []SeedUser{
			{Username: "admin", Email: "admin@corp.example", FullName: "Site Admin", Role: "admin", Password: "changeme123"},
			{Username: "jdoe", Email: "jdoe@corp.example", FullName: "Jordan Doe", Role: "user", Password: "changeme123"},
		},
		CatalogItems: []SeedCatalogItem{
			{Name: "Quality Report", Description: "Weekly quality metrics", Category: "Reports", URLPath: "/reports/quality"},
			{Name: "Legacy Export", Description: "Retired export tool", Category: "Tools", Inactive: true},
		},
	}
}

func TestSeeder_Seed(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db, plainHasher{}, logger.NewLogger())

	require.NoError(t, seeder.Seed(seedFixture()))

	var users []models.UserModel
	require.NoError(t, db.Order("id ASC").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "admin", users[0].Role)
	assert.Equal(t, "hashed:changeme123", users[0].PasswordHash)
	assert.Equal(t, "user", users[1].Role)

	var items []models.CatalogItemModel
	require.NoError(t, db.Order("id ASC").Find(&items).Error)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsActive)
	assert.False(t, items[1].IsActive)
}

func TestSeeder_SeedIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db, plainHasher{}, logger.NewLogger())

	require.NoError(t, seeder.Seed(seedFixture()))
	require.NoError(t, seeder.Seed(seedFixture()))

	var userCount, itemCount int64
	require.NoError(t, db.Model(&models.UserModel{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.CatalogItemModel{}).Count(&itemCount).Error)
	assert.Equal(t, int64(2), userCount)
	assert.Equal(t, int64(2), itemCount)
}

func TestSeeder_Seed_InvalidRoleFallsBack(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db, plainHasher{}, logger.NewLogger())

	file := &SeedFile{
		Users: []SeedUser{
			{Username: "guest", Email: "guest@corp.example", Role: "superuser", Password: "changeme123"},
		},
	}
	require.NoError(t, seeder.Seed(file))

	var model models.UserModel
	require.NoError(t, db.Where("username = ?", "guest").First(&model).Error)
	assert.Equal(t, "user", model.Role)
}

func TestSeeder_Seed_MissingPassword(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db, plainHasher{}, logger.NewLogger())

	file := &SeedFile{
		Users: []SeedUser{{Username: "nopass"}},
	}
	err := seeder.Seed(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username and password")
}
