package config

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("ADMIN_TOKEN", "local-admin")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")
	t.Setenv("ADMIN_TOKEN", "local-admin")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_AdminTokenRequiredWithoutAccountService(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ACCOUNT_BASE_URL", "")
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when neither ACCOUNT_BASE_URL nor ADMIN_TOKEN is set")
	}

	t.Setenv("ACCOUNT_BASE_URL", "https://account.internal")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AccountBaseURL != "https://account.internal" {
		t.Fatalf("unexpected AccountBaseURL: %q", cfg.AccountBaseURL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ADMIN_TOKEN", "local-admin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected in-memory default, got DB_URL=%q", cfg.DBURL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_ParsesCSVAndLogLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_TOKEN", "local-admin")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://arena.example.com, https://admin.example.com ,")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("origins must be trimmed: %q", cfg.CORSAllowedOrigins[1])
	}
	if cfg.LogLevel != zapcore.WarnLevel {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
}
