package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Health Companion API
// @version 1.0
// @description Medicaciones, turnos médicos, calendario y cuenta del usuario.
// @BasePath /
func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "health-companion",
		Short:         "API de medicaciones, turnos y calendario",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "ruta al config YAML (default config.yaml)")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
