// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"PORT", "STORAGE_TYPE", "DATABASE_URL", "REDIS_URL", "PROFILE_SALT",
	"BACKEND_URL", "BACKEND_TIMEOUT", "BACKEND_RETRIES", "CHAT_MODE",
	"REQUIRE_AUTH", "TIMEZONE", "CORS_ORIGINS", "CONFIG_FILE",
}

// clearEnv blanks every variable ParseFlags reads; t.Setenv restores them
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func noEnvFile(t *testing.T) string {
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE_SALT", "salt")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageSQLite || cfg.DatabaseURL != "file:neurocare.db" {
		t.Errorf("unexpected storage %q %q", cfg.StorageType, cfg.DatabaseURL)
	}
	if cfg.BackendTimeout != 10*time.Second || cfg.BackendRetries != 2 {
		t.Errorf("unexpected backend settings %v %d", cfg.BackendTimeout, cfg.BackendRetries)
	}
	if cfg.ChatMode != ChatCanned || cfg.RequireAuth {
		t.Errorf("unexpected chat/auth settings %q %v", cfg.ChatMode, cfg.RequireAuth)
	}
	if cfg.Location == nil {
		t.Error("expected resolved location")
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("expected no CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_TYPE", "memory")
	t.Setenv("PROFILE_SALT", "test-salt")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, ,http://localhost:5173")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageMemory {
		t.Errorf("expected memory storage, got %q", cfg.StorageType)
	}
	if cfg.Location != time.UTC {
		t.Errorf("expected UTC, got %v", cfg.Location)
	}
	want := []string{"https://app.example.com", "http://localhost:5173"}
	if !slices.Equal(cfg.CORSOrigins, want) {
		t.Errorf("expected CORS origins %v, got %v", want, cfg.CORSOrigins)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PROFILE_SALT", "env-salt")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-p", "8080", "-d", "file:test.db", "-profile-salt", "s1", "-backend-retries", "0"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.ProfileSalt != "s1" {
		t.Errorf("expected salt s1, got %q", cfg.ProfileSalt)
	}
	if cfg.BackendRetries != 0 {
		t.Errorf("expected 0 retries, got %d", cfg.BackendRetries)
	}
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "neurocare.yaml")
	yamlDoc := `
port: 7000
storage: redis
redis_url: redis://localhost:6379/0
profile_salt: file-salt
backend_url: http://localhost:8080
backend_timeout: 3s
chat_mode: remote
require_auth: true
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	// Env beats the file
	t.Setenv("PORT", "7100")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-c", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7100 {
		t.Errorf("env should override file: expected 7100, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageRedis || cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("unexpected storage %q %q", cfg.StorageType, cfg.RedisURL)
	}
	if cfg.BackendTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.BackendTimeout)
	}
	if cfg.ChatMode != ChatRemote || !cfg.RequireAuth {
		t.Errorf("unexpected chat/auth settings %q %v", cfg.ChatMode, cfg.RequireAuth)
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PROFILE_SALT")

	envPath := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envPath, []byte("PROFILE_SALT=dotenv-salt\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PROFILE_SALT") })

	cfg, err := ParseFlags([]string{"-env-file", envPath, "-t", "memory"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProfileSalt != "dotenv-salt" {
		t.Errorf("expected salt from .env, got %q", cfg.ProfileSalt)
	}
}

func TestParseFlags_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing salt", []string{}},
		{"unknown storage", []string{"-profile-salt", "s", "-t", "mongo"}},
		{"postgres without url", []string{"-profile-salt", "s", "-t", "postgres"}},
		{"redis without url", []string{"-profile-salt", "s", "-t", "redis"}},
		{"remote chat without backend", []string{"-profile-salt", "s", "-chat", "remote"}},
		{"auth without backend", []string{"-profile-salt", "s", "-require-auth"}},
		{"bad timezone", []string{"-profile-salt", "s", "-tz", "Mars/Olympus"}},
		{"bad port", []string{"-profile-salt", "s", "-p", "70000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			args := append([]string{noEnvFile(t)}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
