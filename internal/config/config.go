package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingSessionSecret is returned when production runs without SESSION_SECRET.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required in production")

// devSessionSecret signs theme cookies outside production when none is configured.
const devSessionSecret = "portfolio-development-session-secret"

// Provider exposes configuration to modules and handlers.
type Provider interface {
	GetAppAddr() string
	GetAppEnv() string
	IsProduction() bool
	GetSessionSecret() string
	GetContentFile() string
	GetDefaultTheme() string
	GetLiveReload() bool
	GetStaticDir() string
	GetRevealTTL() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AppEnv        string
	SessionSecret string
	ContentFile   string
	DefaultTheme  string
	LiveReload    bool
	StaticDir     string
	RevealTTL     time.Duration
}

// New loads a .env file when present, then reads the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults and validating.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppAddr:       getenvDefault(getenv, "APP_ADDR", ":8080"),
		AppEnv:        strings.ToLower(getenvDefault(getenv, "APP_ENV", "development")),
		SessionSecret: getenv("SESSION_SECRET"),
		ContentFile:   getenv("CONTENT_FILE"),
		DefaultTheme:  strings.ToLower(getenvDefault(getenv, "DEFAULT_THEME", "dark")),
		StaticDir:     getenv("STATIC_DIR"),
		RevealTTL:     30 * time.Minute,
	}

	if raw := getenv("LIVE_RELOAD"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse LIVE_RELOAD: %w", err)
		}
		cfg.LiveReload = v
	}
	if raw := getenv("REVEAL_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse REVEAL_TTL: %w", err)
		}
		cfg.RevealTTL = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = devSessionSecret
	}
	return cfg, nil
}

// Validate checks values that have no safe default.
func (c *Config) Validate() error {
	if c.IsProduction() && c.SessionSecret == "" {
		return ErrMissingSessionSecret
	}
	if c.DefaultTheme != "dark" && c.DefaultTheme != "light" {
		return fmt.Errorf("DEFAULT_THEME must be dark or light, got %q", c.DefaultTheme)
	}
	if c.RevealTTL <= 0 {
		return fmt.Errorf("REVEAL_TTL must be positive, got %s", c.RevealTTL)
	}
	return nil
}

func getenvDefault(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppAddr() string { return c.AppAddr }
func (c *Config) GetAppEnv() string { return c.AppEnv }
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentFile() string { return c.ContentFile }
func (c *Config) GetDefaultTheme() string { return c.DefaultTheme }
func (c *Config) GetLiveReload() bool { return c.LiveReload }
func (c *Config) GetStaticDir() string { return c.StaticDir }
func (c *Config) GetRevealTTL() time.Duration { return c.RevealTTL }
