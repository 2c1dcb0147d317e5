package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/spf13/cobra"
)

func newKeyCommand(databaseURL *string) *cobra.Command {
	key := &cobra.Command{
		Use:   "key",
		Short: "API key management",
	}

	key.AddCommand(newKeyCreateCommand(databaseURL))
	key.AddCommand(newKeyListCommand(databaseURL))
	key.AddCommand(newKeyRevokeCommand(databaseURL))

	return key
}

func newKeyCreateCommand(databaseURL *string) *cobra.Command {
	var username, name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new API key for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := store.NewSQLite(*databaseURL)
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := context.Background()
			user, err := repo.FindUserByUsername(ctx, username)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user not found: %s", username)
			}

			plaintext, err := domain.GenerateAPIKey()
			if err != nil {
				return err
			}

			apiKey, err := repo.CreateAPIKey(ctx, user.ID, name, plaintext)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println("API Key created successfully!")
			fmt.Printf("Key: %s\n", plaintext)
			fmt.Println()
			fmt.Println("Save this key - it cannot be retrieved later.")
			fmt.Printf("(id: %s)\n", apiKey.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "username")
	cmd.Flags().StringVar(&name, "name", "", "key name/description")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newKeyListCommand(databaseURL *string) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := store.NewSQLite(*databaseURL)
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := context.Background()
			user, err := repo.FindUserByUsername(ctx, username)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user not found: %s", username)
			}

			keys, err := repo.ListAPIKeysForUser(ctx, user.ID)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				fmt.Printf("No API keys found for user %s\n", username)
				return nil
			}

			fmt.Printf("API keys for user %s:\n", username)
			fmt.Printf("%-36s %-20s %-20s %s\n", "ID", "Name", "Created", "Last Used")
			fmt.Println(strings.Repeat("-", 90))
			for _, k := range keys {
				lastUsed := "Never"
				if k.LastUsedAt != nil {
					lastUsed = k.LastUsedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Printf("%-36s %-20s %-20s %s\n", k.ID, k.Name, k.CreatedAt.Format("2006-01-02 15:04:05"), lastUsed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "username")
	cmd.MarkFlagRequired("user")

	return cmd
}

func newKeyRevokeCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <key>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := store.NewSQLite(*databaseURL)
			if err != nil {
				return err
			}
			defer repo.Close()

			revoked, err := repo.RevokeAPIKey(context.Background(), args[0])
			if err != nil {
				return err
			}
			if revoked {
				fmt.Println("API key revoked successfully")
			} else {
				fmt.Println("API key not found")
			}
			return nil
		},
	}
}
