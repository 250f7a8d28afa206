package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/google"
	"github.com/fwojciec/websearch/placeholder"
	"github.com/fwojciec/websearch/searxng"
	"github.com/joho/godotenv"
)

// Search provider names accepted in SEARCH_PROVIDER.
const (
	ProviderGoogle  = "google"
	ProviderSearXNG = "searxng"
)

// Config holds settings read from the environment at startup.
type Config struct {
	SearchAPIKey   string `env:"SEARCH_API_KEY"`
	SearchEngineID string `env:"SEARCH_ENGINE_ID"`
	SearchProvider string `env:"SEARCH_PROVIDER" envDefault:"google"`
	SearXNGURL     string `env:"SEARXNG_URL"`

	// RequestTimeout in milliseconds, shared by search and page fetches.
	RequestTimeout int `env:"REQUEST_TIMEOUT" envDefault:"10000"`

	// MaxResults is the default web_search result count.
	MaxResults int `env:"MAX_RESULTS" envDefault:"10"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads configuration from the process environment. Variables
// in a .env file in the working directory are applied first, without
// overriding variables already set.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, websearch.Errorf(websearch.EINVALID, "failed to load .env: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, websearch.Errorf(websearch.EINVALID, "invalid configuration: %v", err)
	}
	return cfg, cfg.Validate()
}

// ParseConfig reads configuration from environ instead of the process
// environment.
func ParseConfig(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, websearch.Errorf(websearch.EINVALID, "invalid configuration: %v", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be used. Missing credentials are
// not an error; they select placeholder search results.
func (c *Config) Validate() error {
	switch c.SearchProvider {
	case ProviderGoogle, ProviderSearXNG:
	default:
		return websearch.Errorf(websearch.EINVALID, "unknown SEARCH_PROVIDER %q (want %q or %q)", c.SearchProvider, ProviderGoogle, ProviderSearXNG)
	}
	if c.RequestTimeout <= 0 {
		return websearch.Errorf(websearch.EINVALID, "REQUEST_TIMEOUT must be positive, got %d", c.RequestTimeout)
	}
	if c.MaxResults <= 0 {
		return websearch.Errorf(websearch.EINVALID, "MAX_RESULTS must be positive, got %d", c.MaxResults)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Timeout returns RequestTimeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, websearch.Errorf(websearch.EINVALID, "invalid LOG_LEVEL %q", c.LogLevel)
	}
	return level, nil
}

// NewSearcher returns the configured search provider, or the placeholder
// provider when the configured one lacks credentials.
func (c *Config) NewSearcher() websearch.Searcher {
	switch c.SearchProvider {
	case ProviderSearXNG:
		if c.SearXNGURL != "" {
			return searxng.NewSearcher(c.SearXNGURL, searxng.WithTimeout(c.Timeout()))
		}
	default:
		if c.SearchAPIKey != "" && c.SearchEngineID != "" {
			return google.NewSearcher(c.SearchAPIKey, c.SearchEngineID, google.WithTimeout(c.Timeout()))
		}
	}
	return placeholder.NewSearcher()
}
