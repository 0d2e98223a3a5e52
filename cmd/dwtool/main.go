// dwtool is the operational CLI for the warehouse: migrations, demo
// data seeding and sqlite backup management.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dwtool",
	Short: "Insurance data warehouse operations CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Same env-driven configuration as the server.
		_ = godotenv.Load()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(listBackupsCmd)
}
