package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"accesshub/internal/infrastructure/persistence/models"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/logger"
)

// PasswordHasher hashes seed account passwords before they hit the database.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type SeedUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type SeedCatalogItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	URLPath     string `yaml:"url_path"`
	Inactive    bool   `yaml:"inactive"`
}

type SeedFile struct {
	Users        []SeedUser        `yaml:"users"`
	CatalogItems []SeedCatalogItem `yaml:"catalog_items"`
}

// Seeder loads the YAML seed file and upserts its rows. Seeding is
// idempotent; existing usernames and item names are left untouched.
type Seeder struct {
	db     *gorm.DB
	hasher PasswordHasher
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, hasher PasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{
		db:     db,
		hasher: hasher,
		logger: log,
	}
}

func (s *Seeder) SeedFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	return s.Seed(&file)
}

func (s *Seeder) Seed(file *SeedFile) error {
	if err := s.seedUsers(file.Users); err != nil {
		return err
	}
	if err := s.seedCatalogItems(file.CatalogItems); err != nil {
		return err
	}

	s.logger.Infow("seeding completed",
		"users", len(file.Users),
		"catalog_items", len(file.CatalogItems))

	return nil
}

func (s *Seeder) seedUsers(users []SeedUser) error {
	for _, u := range users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("seed user requires username and password")
		}

		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", u.Username, err)
		}

		model := models.UserModel{
			Username:     u.Username,
			Email:        u.Email,
			FullName:     u.FullName,
			Role:         authorization.ParseUserRole(u.Role).String(),
			PasswordHash: hash,
		}

		if err := s.db.
			Where(models.UserModel{Username: u.Username}).
			FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}

	return nil
}

func (s *Seeder) seedCatalogItems(items []SeedCatalogItem) error {
	for _, item := range items {
		if item.Name == "" {
			return fmt.Errorf("seed catalog item requires a name")
		}

		model := models.CatalogItemModel{
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			URLPath:     item.URLPath,
			IsActive:    !item.Inactive,
		}

		if err := s.db.
			Where(models.CatalogItemModel{Name: item.Name}).
			FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed catalog item %s: %w", item.Name, err)
		}
	}

	return nil
}
