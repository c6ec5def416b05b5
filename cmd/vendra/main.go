package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vendra-inc/vendra/internal/interfaces/cli/migrate"
	"github.com/vendra-inc/vendra/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendra",
		Short: "Vendra - software reseller administration backend",
		Long:  `Vendra is the administration backend for a software reseller: catalog, client subscriptions, renewals and HR, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
