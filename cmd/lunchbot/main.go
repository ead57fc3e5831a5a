package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nduythai/lunchbot/cmd/mainconfig"
	"github.com/nduythai/lunchbot/internal/bot"
	"github.com/nduythai/lunchbot/internal/config"
	"github.com/nduythai/lunchbot/internal/nlp"
	"github.com/nduythai/lunchbot/internal/observability/metrics"
	"github.com/nduythai/lunchbot/internal/ops"
	"github.com/nduythai/lunchbot/internal/sheets"
	"github.com/nduythai/lunchbot/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting lunchbot",
		"env", cfg.Env,
		"port", cfg.Port,
		"sheet_backend", cfg.SheetBackend,
	)

	if cfg.TelegramBotToken == "" {
		logger.Error("TELEGRAM_BOT_TOKEN not found in environment variables")
		os.Exit(1)
	}
	if cfg.GeminiAPIKey == "" {
		logger.Error("GEMINI_API_KEY not found in environment variables")
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "error", err, "timezone", cfg.Timezone)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workbook, closeWorkbook, err := mainconfig.OpenWorkbook(ctx, cfg)
	if err != nil {
		logger.Error("failed to open workbook", "error", err, "backend", cfg.SheetBackend)
		os.Exit(1)
	}
	defer closeWorkbook()
	logger.Info("workbook opened", "backend", cfg.SheetBackend)

	recorder := sheets.NewService(workbook, logger, nil)

	llm, err := nlp.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer llm.Close()

	classifier := nlp.NewClassifier(llm, logger)
	replies := nlp.NewReplyGenerator(llm, logger)

	registry := prometheus.NewRegistry()
	botMetrics := metrics.NewBotMetrics(registry)

	handler := bot.NewHandler(classifier, recorder, replies, botMetrics, logger)
	tg, err := bot.New(cfg.TelegramBotToken, cfg.TelegramPollTimeout, loc, handler, logger)
	if err != nil {
		logger.Error("failed to connect telegram", "error", err)
		os.Exit(1)
	}

	opsHandler := ops.NewHandler(recorder, loc, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      opsHandler.Router(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("ops server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ops server error", "error", err)
			os.Exit(1)
		}
	}()

	botDone := make(chan struct{})
	go func() {
		defer close(botDone)
		if err := tg.Run(ctx); err != nil {
			logger.Error("telegram bot error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server forced to shutdown", "error", err)
	}

	select {
	case <-botDone:
	case <-shutdownCtx.Done():
		logger.Warn("telegram bot did not stop in time")
	}

	logger.Info("lunchbot stopped")
}
