package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phenrril/customerdesk/internal/adapters/repo/sqldb"
	"github.com/phenrril/customerdesk/internal/app"
	"github.com/phenrril/customerdesk/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "customerdesk",
	Short:        "Customer contact intake",
	Long:         `customerdesk validates customer contact records and appends the valid ones to the customers table.`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz y termina el proceso si falla.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Format == "json" {
		zlog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
}

// bootstrap carga config, abre la base y crea el esquema una sola vez.
func bootstrap(ctx context.Context) (*config.Config, *app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	setupLogging(cfg)

	db, err := sqldb.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	application, err := app.NewApp(db)
	if err != nil {
		_ = sqldb.Close(db)
		return nil, nil, fmt.Errorf("create app: %w", err)
	}
	if err := application.Migrate(ctx); err != nil {
		_ = application.Close()
		return nil, nil, fmt.Errorf("initialize schema: %w", err)
	}
	zlog.Debug().Str("driver", cfg.Database.Driver).Msg("database ready")
	return cfg, application, nil
}
