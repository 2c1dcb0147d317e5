// Command hive-server is the SSH session broker: a gRPC API plus an
// operator CLI for user and API key management.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using environment variables")
	}

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var databaseURL string
	var listen string

	root := &cobra.Command{
		Use:   "hive-server",
		Short: "Hive terminal session broker",
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "database DSN / file path")
	root.PersistentFlags().StringVar(&listen, "listen", "[::1]:50051", "gRPC listen address")

	root.AddCommand(
		newServeCommand(&databaseURL, &listen),
		newMigrateCommand(&databaseURL),
		newUserCommand(&databaseURL),
		newKeyCommand(&databaseURL),
	)

	return root
}
