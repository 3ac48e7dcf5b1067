// Package config provides hierarchical configuration loading for folio.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the portfolio server.
type Config struct {
	Server  Server  `yaml:"server"`
	GitHub  GitHub  `yaml:"github"`
	Colors  Colors  `yaml:"colors"`
	Data    Data    `yaml:"data"`
	Cache   Cache   `yaml:"cache"`
	Logging Logging `yaml:"logging"`
	Admin   Admin   `yaml:"admin"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // gin mode: "debug" | "release" | "test"
}

// GitHub holds the repository source configuration.
type GitHub struct {
	Account       string        `yaml:"account"`
	Token         string        `yaml:"token"`
	APIURL        string        `yaml:"api_url"`
	ExcludeRepo   string        `yaml:"exclude_repo"`   // profile README repo; defaults to the account name
	MaxConcurrent int           `yaml:"max_concurrent"` // cap on concurrent language requests
	Timeout       time.Duration `yaml:"timeout"`        // 0 = no client timeout
}

// Colors holds the language colour registry configuration.
type Colors struct {
	RegistryURL string `yaml:"registry_url"`
}

// Data holds the local data directory.
type Data struct {
	Dir string `yaml:"dir"`
}

// Cache holds the portfolio snapshot cache configuration.
type Cache struct {
	TTL       time.Duration `yaml:"ttl"` // 0 disables the cache
	MaxSizeMB int64         `yaml:"max_size_mb"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Admin holds admin area credentials.
type Admin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Defaults returns a Config with sensible default values for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Port: "8080",
			Mode: "debug",
		},
		GitHub: GitHub{
			APIURL:        "https://api.github.com",
			MaxConcurrent: 8,
		},
		Colors: Colors{
			RegistryURL: "https://raw.githubusercontent.com/ozh/github-colors/master/colors.json",
		},
		Data: Data{
			Dir: "json",
		},
		Cache: Cache{
			MaxSizeMB: 8,
		},
		Logging: Logging{
			Level:   "info",
			Service: "folio",
		},
		Admin: Admin{
			Username: "admin",
			Password: "admin123",
		},
	}
}
