package main

import (
	"os"

	"github.com/spf13/cobra"

	"taskdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskdesk",
		Short: "Taskdesk - general affairs task tracker",
		Long:  `Taskdesk tracks the general affairs team's work requests against a shared spreadsheet and serves the dashboard API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
