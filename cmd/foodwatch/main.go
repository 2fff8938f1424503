package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shjfcs/foodwatch/internal/interfaces/cli/migrate"
	"github.com/shjfcs/foodwatch/internal/interfaces/cli/server"
	"github.com/shjfcs/foodwatch/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "foodwatch",
		Short:        "Foodwatch - food safety complaint and poisoning report service",
		Long:         `Foodwatch records consumer complaints and food poisoning investigations with their products, contacts, meals and attachments.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
