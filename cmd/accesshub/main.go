package main

import (
	"os"

	"github.com/spf13/cobra"

	"accesshub/internal/interfaces/cli/migrate"
	"accesshub/internal/interfaces/cli/seed"
	"accesshub/internal/interfaces/cli/server"
)

// @title Access Hub API
// @version 1.0
// @description Internal portal for requesting access to reports and features.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "accesshub",
		Short: "Access hub for internal reports and features",
		Long:  `Access hub serves the internal catalog, takes access requests with justification, and lets administrators review them and grant entitlements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
