package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/spf13/cobra"
)

func newUserCommand(databaseURL *string) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "User management",
	}

	user.AddCommand(newUserCreateCommand(databaseURL))
	user.AddCommand(newUserListCommand(databaseURL))

	return user
}

func newUserCreateCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create <username>",
		Short: "Create a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := store.NewSQLite(*databaseURL)
			if err != nil {
				return err
			}
			defer repo.Close()

			u, err := repo.CreateUser(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created user: %s (id: %s)\n", u.Username, u.ID)
			return nil
		},
	}
}

func newUserListCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := store.NewSQLite(*databaseURL)
			if err != nil {
				return err
			}
			defer repo.Close()

			users, err := repo.ListUsers(context.Background())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No users found")
				return nil
			}

			fmt.Printf("%-36s %-20s %s\n", "ID", "Username", "Created")
			fmt.Println(strings.Repeat("-", 70))
			for _, u := range users {
				fmt.Printf("%-36s %-20s %s\n", u.ID, u.Username, u.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
