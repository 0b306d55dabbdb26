package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"accesshub/internal/infrastructure/auth"
	"accesshub/internal/infrastructure/config"
	"accesshub/internal/infrastructure/database"
	"accesshub/internal/infrastructure/persistence/seeds"
	"accesshub/internal/shared/logger"
)

var (
	env      string
	seedPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database",
		Long:  `Load users and catalog items from the seed file into the database. Seeding is idempotent; existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedPath, "file", "f", "", "Path to seed file (default: the configured seed path)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	path := seedPath
	if path == "" {
		path = cfg.Seed.Path
	}

	log.Infow("seeding database", "environment", env, "path", path)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	seeder := seeds.NewSeeder(database.Get(), hasher, log)

	if err := seeder.SeedFromFile(path); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed successfully")
	fmt.Println("Database seeded successfully")

	return nil
}
