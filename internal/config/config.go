// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Services ServicesConfig `toml:"services"`
	Feed     FeedConfig     `toml:"feed"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ServicesConfig lists the upstream queue services. Snapshots merge
// in the order the fields are declared here.
type ServicesConfig struct {
	Radarr *ServiceConfig `toml:"radarr"`
	Sonarr *ServiceConfig `toml:"sonarr"`
}

type ServiceConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

type FeedConfig struct {
	PollInterval time.Duration `toml:"poll_interval"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8686
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/portarr.db"
	}
	if cfg.Feed.PollInterval == 0 {
		cfg.Feed.PollInterval = 5 * time.Second
	}

	if errs := cfg.Validate(); len(errs) > 0 || len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing, Errors: errs}
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unresolved names are left in place and reported to the caller. Commented
// lines are skipped entirely: placeholders in the shipped example config's
// commented-out blocks must not abort the load.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			varName := match[2 : len(match)-1] // Strip ${ and }
			if value, ok := os.LookupEnv(varName); ok {
				return value
			}
			missing = append(missing, varName)
			return match
		})
	}
	return strings.Join(lines, "\n"), missing
}
