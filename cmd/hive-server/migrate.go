package main

import (
	"fmt"

	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/spf13/cobra"
)

func newMigrateCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := store.NewSQLite(*databaseURL)
			if err != nil {
				return err
			}
			defer repo.Close()
			fmt.Println("Migrations applied")
			return nil
		},
	}
}
