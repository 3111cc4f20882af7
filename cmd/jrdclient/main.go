package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goldpos/jrdclient/internal/client/api"
	"github.com/goldpos/jrdclient/internal/client/cache"
	"github.com/goldpos/jrdclient/internal/client/cli"
	"github.com/goldpos/jrdclient/internal/client/mutate"
	"github.com/goldpos/jrdclient/internal/client/prefs"
	"github.com/goldpos/jrdclient/internal/client/session"
	"github.com/goldpos/jrdclient/internal/client/storage"
	"github.com/goldpos/jrdclient/internal/client/storage/boltdb"
	"github.com/goldpos/jrdclient/internal/client/transport"
	"github.com/goldpos/jrdclient/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file")
	serverURL := flag.String("server", "", "Server URL")
	socketURL := flag.String("socket", "", "Websocket URL")
	dbPath := flag.String("db", "", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Флаги перекрывают конфиг
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if *socketURL != "" {
		cfg.Server.SocketURL = *socketURL
	}
	if *dbPath != "" {
		cfg.Storage.DBPath = *dbPath
	}

	logger := newLogger(cfg)

	// Контекст завершается по Ctrl+C, что останавливает watch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient, err := api.NewClient(cfg.Server.URL, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create API client: %v\n", err)
		os.Exit(1)
	}

	// Восстанавливаем сохраненную сессию, если она есть
	if _, err := session.Restore(ctx, boltStorage, apiClient.Jar(), apiClient.BaseURL()); err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			logger.Warn("failed to restore session", "error", err)
		}
	}

	store := cache.NewStore(logger)

	controller := mutate.NewController(store, apiClient, logger)
	controller.InventoryTimeout = cfg.Inventory.AutoStopTimeout

	prefsService := prefs.NewService(boltStorage, logger)
	socket := transport.New(cfg.GetSocketURL(), logger)

	c := cli.New(apiClient, store, controller, prefsService, boltStorage, socket, cfg, logger)
	c.Run(ctx, command, args[1:])
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func printVersion() {
	fmt.Printf("Jewelry RFID Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
