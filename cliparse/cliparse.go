// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Chat modes
const (
	ChatCanned = "canned"
	ChatRemote = "remote"
)

type Config struct {
	Port           int
	StorageType    string
	DatabaseURL    string
	RedisURL       string
	ProfileSalt    string
	BackendURL     string
	BackendTimeout time.Duration
	BackendRetries int
	ChatMode       string
	RequireAuth    bool
	Timezone       string

	// CORSOrigins are the browser origins allowed to send credentials.
	// Empty means any origin, without credentials.
	CORSOrigins []string

	// Location is Timezone resolved; streak days are counted in it
	Location *time.Location
}

// fileConfig is the YAML config file. Every scalar decodes as a string so
// it can go through the same parsing as environment values.
type fileConfig struct {
	Port           string `yaml:"port"`
	Storage        string `yaml:"storage"`
	DatabaseURL    string `yaml:"database_url"`
	RedisURL       string `yaml:"redis_url"`
	ProfileSalt    string `yaml:"profile_salt"`
	BackendURL     string `yaml:"backend_url"`
	BackendTimeout string `yaml:"backend_timeout"`
	BackendRetries string `yaml:"backend_retries"`
	ChatMode       string `yaml:"chat_mode"`
	RequireAuth    string `yaml:"require_auth"`
	Timezone       string `yaml:"timezone"`
	CORSOrigins    string `yaml:"cors_origins"`
}

// ParseFlags builds the config. Each value comes from the first source that
// has it: CLI flag, environment (optionally loaded from a .env file), YAML
// config file, built-in default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var configPath, envFile string

	fs := flag.NewFlagSet("neurocare", flag.ContinueOnError)

	fs.StringVar(&configPath, "c", "", "YAML config file")
	fs.StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorageType, "t", "", "Storage backend (sqlite, postgres, redis, memory)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite or postgres")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ProfileSalt, "profile-salt", "", "Profile key salt (prefer env)")

	// External backend
	fs.StringVar(&cfg.BackendURL, "backend", "", "Account and chat backend base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", 0, "Backend request timeout")
	fs.IntVar(&cfg.BackendRetries, "backend-retries", -1, "Retries for idempotent backend calls")
	fs.StringVar(&cfg.ChatMode, "chat", "", "Chat mode (canned or remote)")
	fs.BoolVar(&cfg.RequireAuth, "require-auth", false, "Resolve profiles from bearer tokens")
	fs.StringVar(&cfg.Timezone, "tz", "", "Time zone for streak days")

	var corsOrigins string
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated origins allowed to send credentials")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	var file fileConfig
	if configPath != "" {
		var err error
		if file, err = readConfigFile(configPath); err != nil {
			return Config{}, err
		}
	}

	pick := func(flagName string, current string, envKey, fileVal, def string) string {
		if set[flagName] {
			return current
		}
		if v := os.Getenv(envKey); v != "" {
			return v
		}
		if fileVal != "" {
			return fileVal
		}
		return def
	}

	if !set["p"] {
		port, err := strconv.Atoi(pick("p", "", "PORT", file.Port, "3318"))
		if err != nil {
			return Config{}, errors.New("invalid PORT value")
		}
		cfg.Port = port
	}

	cfg.StorageType = strings.ToLower(pick("t", cfg.StorageType, "STORAGE_TYPE", file.Storage, StorageSQLite))
	dbDefault := ""
	if cfg.StorageType == StorageSQLite {
		dbDefault = "file:neurocare.db"
	}
	cfg.DatabaseURL = pick("d", cfg.DatabaseURL, "DATABASE_URL", file.DatabaseURL, dbDefault)
	cfg.RedisURL = pick("redis", cfg.RedisURL, "REDIS_URL", file.RedisURL, "")
	cfg.ProfileSalt = pick("profile-salt", cfg.ProfileSalt, "PROFILE_SALT", file.ProfileSalt, "")
	cfg.BackendURL = pick("backend", cfg.BackendURL, "BACKEND_URL", file.BackendURL, "")
	cfg.ChatMode = strings.ToLower(pick("chat", cfg.ChatMode, "CHAT_MODE", file.ChatMode, ChatCanned))
	cfg.Timezone = pick("tz", cfg.Timezone, "TIMEZONE", file.Timezone, "Local")
	cfg.CORSOrigins = splitList(pick("cors-origins", corsOrigins, "CORS_ORIGINS", file.CORSOrigins, ""))

	if !set["backend-timeout"] {
		d, err := time.ParseDuration(pick("backend-timeout", "", "BACKEND_TIMEOUT", file.BackendTimeout, "10s"))
		if err != nil {
			return Config{}, fmt.Errorf("invalid BACKEND_TIMEOUT value: %w", err)
		}
		cfg.BackendTimeout = d
	}
	if !set["backend-retries"] {
		n, err := strconv.Atoi(pick("backend-retries", "", "BACKEND_RETRIES", file.BackendRetries, "2"))
		if err != nil {
			return Config{}, errors.New("invalid BACKEND_RETRIES value")
		}
		cfg.BackendRetries = n
	}
	if !set["require-auth"] {
		b, err := strconv.ParseBool(pick("require-auth", "", "REQUIRE_AUTH", file.RequireAuth, "false"))
		if err != nil {
			return Config{}, errors.New("invalid REQUIRE_AUTH value")
		}
		cfg.RequireAuth = b
	}

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// splitList splits a comma-separated value, dropping blanks
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range", cfg.Port)
	}

	switch cfg.StorageType {
	case StorageSQLite, StoragePostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case StorageRedis:
		if cfg.RedisURL == "" {
			return errors.New("redis URL required (use -redis or REDIS_URL env)")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unsupported storage type %q", cfg.StorageType)
	}

	// Secrets - MUST be provided
	if cfg.ProfileSalt == "" {
		return errors.New("PROFILE_SALT required")
	}

	switch cfg.ChatMode {
	case ChatCanned, ChatRemote:
	default:
		return fmt.Errorf("unsupported chat mode %q", cfg.ChatMode)
	}
	if (cfg.ChatMode == ChatRemote || cfg.RequireAuth) && cfg.BackendURL == "" {
		return errors.New("BACKEND_URL required for remote chat or bearer auth")
	}
	if cfg.BackendRetries < 0 {
		return errors.New("backend retries must not be negative")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc
	return nil
}

// loadEnvFile loads KEY=VALUE pairs into the environment without
// overriding variables that are already set. A missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func readConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return file, nil
}
