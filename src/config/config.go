// Package config resolves the externally supplied configuration: OAuth
// client secret, redirect target, provider selection, listen address.
// Provider API keys stay in the environment and are read by the models
// layer itself.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvClientSecretFile = "GOOGLE_CLIENT_SECRET_FILE"
	EnvClientSecretJSON = "GOOGLE_CLIENT_SECRET_JSON"
	EnvRedirectURL      = "OAUTH_REDIRECT_URL"
)

// ErrNoClientSecret means no Google OAuth client configuration was
// supplied at all, as opposed to one that was supplied but malformed.
var ErrNoClientSecret = errors.New(
	"missing Google client secret: set " + EnvClientSecretFile + " or " + EnvClientSecretJSON + ", or pass -client-secret")

type Config struct {
	ListenAddr   string
	Provider     string
	Model        string
	RedirectURL  string
	ClientSecret []byte
}

// Options carry the command-line values; empty fields fall back to the
// environment and then to defaults.
type Options struct {
	EnvFile          string
	ListenAddr       string
	Provider         string
	Model            string
	ClientSecretPath string
	RedirectURL      string
}

// Load resolves the configuration. A missing client secret is reported
// as an error wrapping ErrNoClientSecret but still returns the rest of
// the config, so the caller can bring the UI up with an inline error
// instead of dying.
func Load(opts Options) (*Config, error) {
	// Best effort: a missing .env file is fine.
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ListenAddr:  opts.ListenAddr,
		Provider:    opts.Provider,
		Model:       opts.Model,
		RedirectURL: opts.RedirectURL,
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = os.Getenv(EnvRedirectURL)
	}

	secretPath := opts.ClientSecretPath
	if secretPath == "" {
		secretPath = os.Getenv(EnvClientSecretFile)
	}
	switch {
	case secretPath != "":
		data, err := os.ReadFile(secretPath)
		if err != nil {
			return cfg, fmt.Errorf("reading client secret %s: %w", secretPath, err)
		}
		cfg.ClientSecret = data
	case os.Getenv(EnvClientSecretJSON) != "":
		cfg.ClientSecret = []byte(os.Getenv(EnvClientSecretJSON))
	default:
		return cfg, ErrNoClientSecret
	}
	return cfg, nil
}

// DefaultModel picks a sensible model ID per provider.
func DefaultModel(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o-mini"
	case "anthropic", "claude":
		return "claude-3-5-sonnet-latest"
	case "ollama":
		return "llama3"
	default:
		return "gemini-1.5-pro-latest"
	}
}
