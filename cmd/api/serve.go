package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"health-companion/internal/adapters/auth/local"
	"health-companion/internal/adapters/auth/remote"
	"health-companion/internal/adapters/storage/gormstore"
	mem "health-companion/internal/adapters/storage/memory"
	pg "health-companion/internal/adapters/storage/postgres"
	"health-companion/internal/adapters/storage/redisstore"
	"health-companion/internal/config"
	"health-companion/internal/platform/logger"
	"health-companion/internal/ports/auth"
	"health-companion/internal/ports/securestore"
	"health-companion/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "health-companion",
	})
}

func serve(ctx context.Context, cfg config.Config) error {
	log := newLogger(cfg)

	opts := router.Options{Logger: log}
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}()

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		closers = append(closers, db.Close)
		opts.DB = db
		log.Info("using postgres repositories", nil)
	} else {
		log.Warn("DB_DSN empty, using in-memory repositories", nil)
	}

	if cfg.RedisAddr != "" {
		rs := redisstore.New(redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		closers = append(closers, rs.Close)
		if err := rs.Ping(ctx); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		opts.SecureStore = rs
		log.Info("using redis secure store", map[string]any{"addr": cfg.RedisAddr})
	} else {
		opts.SecureStore = mem.NewSecureStore()
	}

	provider, verifier, closeAuth, err := buildAuth(cfg, opts.DB, opts.SecureStore, log)
	if err != nil {
		return err
	}
	if closeAuth != nil {
		closers = append(closers, closeAuth)
	}
	opts.AuthProvider = provider
	opts.AuthVerifier = verifier

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "auth_mode": cfg.AuthMode()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

// buildAuth elige provider y verifier según auth.mode.
// En modo dev el verifier es nil y el router arma un provider local propio.
func buildAuth(cfg config.Config, db *sql.DB, store securestore.Store, log logger.Logger) (auth.Provider, auth.AuthVerifier, func() error, error) {
	switch cfg.AuthMode() {
	case config.AuthModeLocal:
		var (
			accounts local.AccountRepository
			closeFn  func() error
		)
		if db != nil {
			gdb, err := gormstore.Open(cfg.DBDSN, log)
			if err != nil {
				return nil, nil, nil, err
			}
			sqlDB, err := gdb.DB()
			if err != nil {
				return nil, nil, nil, err
			}
			closeFn = sqlDB.Close
			accounts = gormstore.NewAccountRepo(gdb)
		} else {
			accounts = mem.NewAccountRepo()
		}

		p, err := local.NewProvider(accounts, store, local.Options{
			Secret: cfg.Auth.JWTSecret,
			Issuer: cfg.Auth.JWTIssuer,
			TTL:    cfg.Auth.TokenTTLDuration(),
		})
		if err != nil {
			if closeFn != nil {
				_ = closeFn()
			}
			return nil, nil, nil, err
		}
		return p, p, closeFn, nil

	case config.AuthModeRemote:
		client, err := remote.NewClient(remote.Config{
			BaseURL:      cfg.Auth.BaseURL,
			APIKey:       cfg.Auth.APIKey,
			APIKeyHeader: cfg.Auth.APIKeyHeader,
			Timeout:      cfg.Auth.TimeoutDuration(),
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return client, remote.NewVerifier(client), nil, nil

	default:
		log.Warn("auth mode dev: X-Debug-User-ID enabled", nil)
		return nil, nil, nil, nil
	}
}
