package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/nakhrali/storefront/internal/client/api"
	"github.com/nakhrali/storefront/internal/client/cart"
	"github.com/nakhrali/storefront/internal/client/cli"
	"github.com/nakhrali/storefront/internal/client/iocli"
	"github.com/nakhrali/storefront/internal/client/review"
	"github.com/nakhrali/storefront/internal/client/search"
	"github.com/nakhrali/storefront/internal/client/session"
	"github.com/nakhrali/storefront/internal/client/shipping"
	"github.com/nakhrali/storefront/internal/client/storage/boltdb"
	"github.com/nakhrali/storefront/internal/client/theme"
	"github.com/nakhrali/storefront/internal/client/wishlist"
	"github.com/nakhrali/storefront/internal/config"
	"github.com/nakhrali/storefront/internal/notify"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "storefront.toml", "Path to config file")
	serverURL := flag.String("server", "", "API base URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	password := flag.String("password", "", "Account password (not recommended)")
	passwordFile := flag.String("password-file", "", "Path to file containing the account password")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.APIBase = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	args := flag.Args()
	stdio := iocli.NewStdio()
	if len(args) == 0 {
		cli.New(stdio, nil, nil, nil, nil, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := clientapi.NewClient(cfg.APIBase, cfg.Timeout())
	hub := notify.NewHub(logger)

	sessionSvc := session.NewService(apiClient, store, logger)
	cartSvc := cart.NewService(apiClient, store, sessionSvc, hub, logger)
	wishlistSvc := wishlist.NewService(apiClient, sessionSvc, hub, logger)
	reviewSvc := review.NewService(apiClient, sessionSvc, hub, logger)
	searchSvc := search.NewService(apiClient, store, hub, logger)
	shippingSvc := shipping.NewService(apiClient, sessionSvc, cfg.PickupPostcode, logger)
	themeSvc := theme.NewService(store, theme.DetectSource(), logger)

	if err := sessionSvc.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}
	// An expired access token is refreshed here so every command starts
	// with a usable session; a dead refresh token degrades to guest mode.
	sessionSvc.EnsureValidToken(ctx)

	if err := cartSvc.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load cart: %v\n", err)
		os.Exit(1)
	}
	if err := searchSvc.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load search history: %v\n", err)
		os.Exit(1)
	}
	if err := themeSvc.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load theme: %v\n", err)
		os.Exit(1)
	}

	app := cli.New(stdio, sessionSvc, cartSvc, wishlistSvc, reviewSvc, searchSvc, shippingSvc, themeSvc)
	app.SubscribeNotifications(hub)

	passwords := cli.Passwords{
		FromFile: *passwordFile,
		FromArgs: *password,
	}
	if err := app.Run(ctx, passwords, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Nakhrali Storefront Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
