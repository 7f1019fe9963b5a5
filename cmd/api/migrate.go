package main

import (
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/internal/config/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		log := config.NewLogger()

		db.Init()
		if err := db.Migrate(db.DB); err != nil {
			return err
		}
		log.Info("database migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
