package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SHEET_BACKEND", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("TIMEZONE", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.SheetBackend != "google" {
		t.Fatalf("expected default sheet backend google, got %s", cfg.SheetBackend)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModel)
	}
	if cfg.GoogleCredentialsFile != "credentials.json" {
		t.Fatalf("expected default credentials file, got %s", cfg.GoogleCredentialsFile)
	}
	if cfg.Timezone != "Asia/Ho_Chi_Minh" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	if cfg.TelegramPollTimeout != 30 {
		t.Fatalf("expected default poll timeout, got %d", cfg.TelegramPollTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:token")
	t.Setenv("TELEGRAM_POLL_TIMEOUT", "60")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SHEET_BACKEND", " Excel ")
	t.Setenv("GOOGLE_SHEET_ID", "sheet-abc")
	t.Setenv("EXCEL_FILE", "/tmp/orders.xlsx")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.TelegramBotToken != "123456:token" {
		t.Fatalf("expected token override, got %s", cfg.TelegramBotToken)
	}
	if cfg.TelegramPollTimeout != 60 {
		t.Fatalf("expected poll timeout override, got %d", cfg.TelegramPollTimeout)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("expected gemini key override, got %s", cfg.GeminiAPIKey)
	}
	if cfg.SheetBackend != "excel" {
		t.Fatalf("expected normalized sheet backend, got %s", cfg.SheetBackend)
	}
	if cfg.GoogleSheetID != "sheet-abc" {
		t.Fatalf("expected sheet id override, got %s", cfg.GoogleSheetID)
	}
	if cfg.ExcelFile != "/tmp/orders.xlsx" {
		t.Fatalf("expected excel file override, got %s", cfg.ExcelFile)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected shutdown timeout override, got %s", cfg.ShutdownTimeout)
	}
}
