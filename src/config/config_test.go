package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv(EnvClientSecretFile, "")
	t.Setenv(EnvClientSecretJSON, "")

	cfg, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "absent.env")})
	if !errors.Is(err, ErrNoClientSecret) {
		t.Fatalf("err = %v, want ErrNoClientSecret", err)
	}
	// Defaults still resolved so the UI can come up with an inline error.
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Model != "gemini-1.5-pro-latest" {
		t.Errorf("Model = %q", cfg.Model)
	}
}

func TestLoadSecretFromFile(t *testing.T) {
	t.Setenv(EnvClientSecretFile, "")
	t.Setenv(EnvClientSecretJSON, "")

	path := filepath.Join(t.TempDir(), "secret.json")
	if err := os.WriteFile(path, []byte(`{"web":{}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(Options{ClientSecretPath: path, Provider: "openai"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(cfg.ClientSecret) != `{"web":{}}` {
		t.Errorf("ClientSecret = %q", cfg.ClientSecret)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want openai default", cfg.Model)
	}
}

func TestLoadSecretFromEnvJSON(t *testing.T) {
	t.Setenv(EnvClientSecretFile, "")
	t.Setenv(EnvClientSecretJSON, `{"web":{"client_id":"x"}}`)
	t.Setenv(EnvRedirectURL, "https://app.example.com/oauth2/callback")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(cfg.ClientSecret) != `{"web":{"client_id":"x"}}` {
		t.Errorf("ClientSecret = %q", cfg.ClientSecret)
	}
	if cfg.RedirectURL != "https://app.example.com/oauth2/callback" {
		t.Errorf("RedirectURL = %q", cfg.RedirectURL)
	}
}

func TestLoadUnreadableSecretFile(t *testing.T) {
	t.Setenv(EnvClientSecretFile, "")
	t.Setenv(EnvClientSecretJSON, "")

	_, err := Load(Options{ClientSecretPath: filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected error for unreadable secret file")
	}
	if errors.Is(err, ErrNoClientSecret) {
		t.Fatal("unreadable file is a distinct failure from a missing secret")
	}
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv does not override variables that are already set, even to
	// the empty string, so these must be genuinely unset. t.Setenv
	// registers the restore; Unsetenv clears for the test body.
	for _, k := range []string{EnvClientSecretFile, EnvClientSecretJSON, EnvRedirectURL} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath,
		[]byte(EnvClientSecretJSON+`={"web":{}}`+"\n"+EnvRedirectURL+"=https://dot.env/cb\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(Options{EnvFile: envPath})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RedirectURL != "https://dot.env/cb" {
		t.Errorf("RedirectURL = %q", cfg.RedirectURL)
	}
}
