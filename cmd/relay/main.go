package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tweet_relay/internal/budget"
	"tweet_relay/internal/config"
	"tweet_relay/internal/delivery/discord"
	"tweet_relay/internal/scheduler"
	"tweet_relay/internal/service"
	"tweet_relay/internal/source/twitter"
	"tweet_relay/internal/storage/sqlite"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	handles := cfg.Relay.HandleList()

	// Static rate-budget precondition: refuse to start if the configured
	// interval and account count would blow either API window.
	if err := budget.Check(logger, cfg.Relay.Interval.Std(), len(handles), budget.DefaultWindows()); err != nil {
		logger.Error("rate budget violated", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.Storage.Path)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		logger.Error("failed to init schema", "error", err)
		os.Exit(1)
	}
	logger.Info("opened cursor database", "path", cfg.Storage.Path)

	// Resolve the watched accounts once; the list is immutable afterwards.
	twitterClient := twitter.New(twitter.Config{
		BearerToken: cfg.Twitter.BearerToken,
		BaseURL:     cfg.Twitter.BaseURL,
		Timeout:     cfg.Twitter.Timeout.Std(),
	}, logger)

	accounts, err := twitterClient.ResolveAccounts(ctx, handles)
	if err != nil {
		logger.Error("failed to resolve accounts", "error", err)
		os.Exit(1)
	}

	webhook := discord.New(discord.Config{
		WebhookURL: cfg.Discord.WebhookURL,
		Timeout:    cfg.Discord.Timeout.Std(),
	}, logger)

	relayService := service.NewRelayService(
		twitterClient,
		webhook,
		sqlite.NewCursorStore(db),
		accounts,
		cfg.Relay.PageSize,
		logger,
	)

	sched := scheduler.NewScheduler(relayService, cfg.Relay.Interval.Std(), logger)

	logger.Info("starting tweet relay",
		"accounts", len(accounts),
		"interval", cfg.Relay.Interval,
		"page_size", cfg.Relay.PageSize,
		"channel", webhook.ChannelID(),
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
