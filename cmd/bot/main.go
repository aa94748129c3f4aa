package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shark/internal/config"
	"shark/internal/handler"
	"shark/internal/service"
	"shark/internal/storage"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Shark Bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.ValidateBot(); err != nil {
		logger.Fatal("Invalid bot config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("driver", cfg.Storage.Driver))

	stores, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer stores.Close()

	// Initialize services
	authService := service.NewAuthService(stores.Users, cfg.Bot.Password)
	wordService := service.NewWordService(stores.Words, stores.Archive, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	h := handler.NewHandler(bot, authService, wordService, logger)
	h.RegisterHandlers()

	notifier := handler.NewNotifier(bot, authService, logger)
	redisplay := service.NewRedisplayService(wordService, notifier, cfg.RedisplayInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go redisplay.Run(ctx)

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}
