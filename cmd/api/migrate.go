package main

import (
	"errors"
	"fmt"

	"health-companion/internal/adapters/storage/gormstore"
	pg "health-companion/internal/adapters/storage/postgres"
	"health-companion/internal/config"

	"github.com/spf13/cobra"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas de medicaciones, turnos y cuentas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("migrate: DB_DSN is required")
			}
			log := newLogger(cfg)

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("migrate records: %w", err)
			}
			log.Info("records schema applied", nil)

			// gormstore.Open corre AutoMigrate de cuentas.
			gdb, err := gormstore.Open(cfg.DBDSN, log)
			if err != nil {
				return err
			}
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
			log.Info("accounts schema applied", nil)
			return nil
		},
	}
}
