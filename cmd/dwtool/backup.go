package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"insure-dw.backend/internal/config"
	"insure-dw.backend/pkg/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the sqlite database to a timestamped backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "" {
			return fmt.Errorf("backups are file copies and only work with the sqlite driver, not %q", cfg.Database.Driver)
		}

		dest, err := backup.Create(cfg.Database.Path, cfg.Backup.Dir, cfg.Backup.MaxBackups)
		if err != nil {
			return err
		}
		fmt.Printf("backup written to %s\n", dest)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Replace the sqlite database with a backup copy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := backup.Restore(args[0], cfg.Database.Path); err != nil {
			return err
		}
		fmt.Printf("restored %s to %s\n", args[0], cfg.Database.Path)
		return nil
	},
}

var listBackupsCmd = &cobra.Command{
	Use:   "list-backups",
	Short: "List existing backups, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		entries, err := backup.List(cfg.Backup.Dir)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no backups found")
			return nil
		}
		for _, entry := range entries {
			fmt.Println(entry)
		}
		return nil
	},
}
