package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eventbook/eventbook/internal/client/api"
	"github.com/eventbook/eventbook/internal/client/auth"
	"github.com/eventbook/eventbook/internal/client/booking"
	"github.com/eventbook/eventbook/internal/client/cli"
	"github.com/eventbook/eventbook/internal/client/iocli"
	"github.com/eventbook/eventbook/internal/client/storage/boltdb"
	"github.com/eventbook/eventbook/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment per invocation
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")
	debug := flag.Bool("debug", cfg.Debug, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, store)
	bookingService := booking.NewService(apiClient, authService, store)

	// Startup hygiene: silently drop an expired session before any
	// command sees it.
	if err := authService.CheckAndEnforceExpiry(ctx); err != nil {
		slog.Warn("failed to enforce session expiry", "error", err)
	}

	c := cli.New(stdio, apiClient, authService, bookingService)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("eventbook client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
