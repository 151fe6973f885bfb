package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Seed data and history
	SeedFile       string // keyword/response record, env: SEED_FILE
	HistoryFile    string // flat-file conversation log, env: HISTORY_FILE
	HistoryBackend string // "file" or "postgres", env: HISTORY_BACKEND
	SaveInterval   time.Duration

	// Database (optional)
	DatabaseURL string

	// Redis (optional, rate limiter storage)
	RedisURL string

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// OIDC (optional; chat is open when OIDCIssuer is empty)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Your Friend ChatJPT"
	BotName   string // env: BOT_NAME, default: "ChatJPT"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		SeedFile:         getEnv("SEED_FILE", "keyword_response.txt"),
		HistoryFile:      getEnv("HISTORY_FILE", "conversation_history.txt"),
		HistoryBackend:   getEnv("HISTORY_BACKEND", "file"),
		SaveInterval:     getDuration("HISTORY_SAVE_INTERVAL", 30*time.Second),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 100),
		TLSEnabled:       getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:      getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:       getEnv("TLS_KEY_FILE", ""),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),

		SiteTitle: getEnv("SITE_TITLE", "Your Friend ChatJPT"),
		BotName:   getEnv("BOT_NAME", "ChatJPT"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AuthEnabled returns true if OIDC login guards the chat.
func (c *Config) AuthEnabled() bool {
	return c.OIDCIssuer != ""
}

// UsePostgresHistory returns true if the conversation log lives in the database.
func (c *Config) UsePostgresHistory() bool {
	return c.HistoryBackend == "postgres" && c.DatabaseURL != ""
}
