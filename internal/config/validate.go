// internal/config/validate.go
package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// At least one queue service required
	if c.Services.Radarr == nil && c.Services.Sonarr == nil {
		errs = append(errs, "services: at least one service (radarr or sonarr) must be configured")
	}
	if c.Services.Radarr != nil {
		errs = append(errs, validateService("radarr", c.Services.Radarr)...)
	}
	if c.Services.Sonarr != nil {
		errs = append(errs, validateService("sonarr", c.Services.Sonarr)...)
	}

	// Feed validation
	if c.Feed.PollInterval < 0 {
		errs = append(errs, fmt.Sprintf("feed.poll_interval: must be positive, got %s", c.Feed.PollInterval))
	}

	return errs
}

func validateService(name string, svc *ServiceConfig) []string {
	var errs []string
	if svc.URL == "" {
		errs = append(errs, fmt.Sprintf("services.%s.url: required when %s is configured", name, name))
	}
	if svc.APIKey == "" {
		errs = append(errs, fmt.Sprintf("services.%s.api_key: required when %s is configured", name, name))
	}
	return errs
}
