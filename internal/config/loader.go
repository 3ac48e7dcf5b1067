package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "folio.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	path := DefaultConfigFile
	if v := os.Getenv("FOLIO_CONFIG"); v != "" {
		path = v
	}
	return LoadFrom(path)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if cfg.GitHub.ExcludeRepo == "" {
		cfg.GitHub.ExcludeRepo = cfg.GitHub.Account
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Mode, "GIN_MODE")

	setString(&cfg.GitHub.Account, "GITHUB_ACCOUNT")
	setString(&cfg.GitHub.Token, "API_TOKEN_GITHUB")
	setString(&cfg.GitHub.APIURL, "GITHUB_API_URL")
	setString(&cfg.GitHub.ExcludeRepo, "GITHUB_EXCLUDE_REPO")
	setInt(&cfg.GitHub.MaxConcurrent, "GITHUB_MAX_CONCURRENT")
	setDuration(&cfg.GitHub.Timeout, "GITHUB_TIMEOUT")

	setString(&cfg.Colors.RegistryURL, "COLORS_REGISTRY_URL")
	setString(&cfg.Data.Dir, "DATA_DIR")

	setDuration(&cfg.Cache.TTL, "CACHE_TTL")
	setInt64(&cfg.Cache.MaxSizeMB, "CACHE_MAX_SIZE_MB")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Service, "LOG_SERVICE")

	setString(&cfg.Admin.Username, "ADMIN_USERNAME")
	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q must be debug, release or test", cfg.Server.Mode)
	}
	if cfg.GitHub.Account == "" {
		return errors.New("github.account is required")
	}
	if cfg.GitHub.APIURL == "" {
		return errors.New("github.api_url is required")
	}
	if cfg.GitHub.MaxConcurrent < 1 {
		return errors.New("github.max_concurrent must be >= 1")
	}
	if cfg.Colors.RegistryURL == "" {
		return errors.New("colors.registry_url is required")
	}
	if cfg.Data.Dir == "" {
		return errors.New("data.dir is required")
	}
	if cfg.Cache.TTL > 0 && cfg.Cache.MaxSizeMB < 1 {
		return errors.New("cache.max_size_mb must be >= 1 when the cache is enabled")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
