package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/huddle-inc/huddle/internal/interfaces/cli/migrate"
	"github.com/huddle-inc/huddle/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "huddle",
		Short: "Huddle notification and entitlement service",
		Long:  `Huddle delivers in-app and push notifications and resolves group entitlements, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
