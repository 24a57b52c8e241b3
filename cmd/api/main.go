package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/projectboard/core/cmd/api/commands"
)

// @title ProjectBoard API
// @version 1.0
// @description Multi-tenant kanban backend with workspaces, columns, tasks, tags and assignees

// @contact.name ProjectBoard Support
// @contact.url https://github.com/projectboard/core

// @license.name MIT
// @license.url https://github.com/projectboard/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "projectboard",
		Short: "ProjectBoard API Server",
		Long:  `ProjectBoard is a multi-tenant kanban backend: per-user workspaces with ordered columns, tasks, tags and assignees.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
