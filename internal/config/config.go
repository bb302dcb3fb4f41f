// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults
const (
	DefaultAddr          = ":8080"
	DefaultAdminEmail    = "admin@ironcore.fit"
	DefaultAdminPassword = "admin123"
	DefaultFrom          = "IRONCORE <noreply@ironcore.fit>"
	DefaultReplyTo       = "hello@ironcore.fit"
	DefaultSlowRequestMs = 200
	DefaultSlowQueryMs   = 50
)

// Errors
var (
	ErrBadCSRFKey     = errors.New("IRONCORE_CSRF_KEY must be 64 hex characters (32 bytes)")
	ErrMissingCSRFKey = errors.New("IRONCORE_CSRF_KEY is required in production")
	ErrBadLogLevel    = errors.New("IRONCORE_LOG_LEVEL must be one of: debug, info, warn, error")
)

// Config holds every runtime setting.
type Config struct {
	Addr string
	Env  string

	CSRFKey          []byte
	CSRFKeyGenerated bool // true when no key was configured and a random one is in use
	TrustedOrigins   []string

	AdminEmail    string
	AdminPassword string

	ResendKey   string
	EmailFrom   string
	ReplyTo     string
	NotifyEmail string

	ContentFile string

	LogLevel      slog.Level
	SlowRequestMs int
	SlowQueryMs   int
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads the environment after applying envFile, if it exists.
// Variables already set in the environment win over the file.
// PRE: none
// POST: Returns a complete Config or the first invalid setting
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Addr:          envOrDefault("IRONCORE_ADDR", DefaultAddr),
		Env:           envOrDefault("IRONCORE_ENV", EnvDevelopment),
		AdminEmail:    envOrDefault("IRONCORE_ADMIN_EMAIL", DefaultAdminEmail),
		AdminPassword: envOrDefault("IRONCORE_ADMIN_PASSWORD", DefaultAdminPassword),
		ResendKey:     os.Getenv("IRONCORE_RESEND_KEY"),
		EmailFrom:     envOrDefault("IRONCORE_RESEND_FROM", DefaultFrom),
		ReplyTo:       envOrDefault("IRONCORE_REPLY_TO", DefaultReplyTo),
		NotifyEmail:   os.Getenv("IRONCORE_NOTIFY_EMAIL"),
		ContentFile:   os.Getenv("IRONCORE_CONTENT_FILE"),
		SlowRequestMs: envInt("IRONCORE_SLOW_REQUEST_MS", DefaultSlowRequestMs),
		SlowQueryMs:   envInt("IRONCORE_SLOW_QUERY_MS", DefaultSlowQueryMs),
	}
	for _, o := range strings.Split(os.Getenv("IRONCORE_TRUSTED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.TrustedOrigins = append(cfg.TrustedOrigins, o)
		}
	}

	level, err := parseLevel(os.Getenv("IRONCORE_LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	key, generated, err := csrfKey(os.Getenv("IRONCORE_CSRF_KEY"), cfg.IsProduction())
	if err != nil {
		return Config{}, err
	}
	cfg.CSRFKey, cfg.CSRFKeyGenerated = key, generated

	return cfg, nil
}

func csrfKey(keyHex string, production bool) ([]byte, bool, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, false, ErrBadCSRFKey
		}
		return key, false, nil
	}
	if production {
		return nil, false, ErrMissingCSRFKey
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, false, fmt.Errorf("generate CSRF key: %w", err)
	}
	return key, true, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, ErrBadLogLevel
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}
