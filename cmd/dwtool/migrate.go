package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"insure-dw.backend/internal/config"
	"insure-dw.backend/internal/infrastructure/datasources"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update all warehouse tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := datasources.Open(cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if err := datasources.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		fmt.Println("migration complete")
		return nil
	},
}
