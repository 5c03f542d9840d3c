// Package main is the entry point for the pennywise expense tracker CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/pennywise/pennywise/internal/cli"
	"gitlab.com/pennywise/pennywise/internal/config"
	"gitlab.com/pennywise/pennywise/internal/database"
	"gitlab.com/pennywise/pennywise/internal/logger"
	"gitlab.com/pennywise/pennywise/internal/session"
	"gitlab.com/pennywise/pennywise/internal/storage"
	"gitlab.com/pennywise/pennywise/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("pennywise %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogJSON {
		logger.SetJSON()
	}

	db, err := database.Connect(ctx, cfg.DBPath)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	gateway := storage.NewGateway(db)
	sessions := session.NewManager(gateway)
	expenses := store.New(gateway)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	app := cli.New(cfg, sessions, expenses)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
