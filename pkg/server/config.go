// Copyright (c) 2025, Persefoni.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/blakeblackwell-persefoni/calcd/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits
	MaxBodyBytes int64

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// fileConfig is the YAML shape of a config file. Durations are strings
// in time.ParseDuration syntax ("15s", "1m") since yaml.v3 decodes
// time.Duration as raw nanoseconds.
type fileConfig struct {
	Name            string     `yaml:"name"`
	Address         string     `yaml:"address"`
	Port            int        `yaml:"port"`
	RateLimit       rate.Limit `yaml:"rateLimit"`
	RateLimitBurst  int        `yaml:"rateLimitBurst"`
	MaxBodyBytes    int64      `yaml:"maxBodyBytes"`
	ReadTimeout     string     `yaml:"readTimeout"`
	WriteTimeout    string     `yaml:"writeTimeout"`
	IdleTimeout     string     `yaml:"idleTimeout"`
	ShutdownTimeout string     `yaml:"shutdownTimeout"`
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns sensible defaults
func parseConfig() *Config {
	cfg := &Config{
		Name:            "server",
		Version:         "undefined",
		Address:         "",
		Port:            8080,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		MaxBodyBytes:    defaults.MaxRequestBodyBytes,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}

	// Override with environment variables if set
	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match orchestrator eviction grace period
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// Environment overrides still apply (they are part of the defaults), and
// zero values in the file keep the default.
func LoadConfig(path string) (*Config, error) {
	cfg := parseConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overlay fileConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if overlay.Name != "" {
		cfg.Name = overlay.Name
	}
	if overlay.Address != "" {
		cfg.Address = overlay.Address
	}
	if overlay.Port > 0 {
		cfg.Port = overlay.Port
	}
	if overlay.RateLimit > 0 {
		cfg.RateLimit = overlay.RateLimit
	}
	if overlay.RateLimitBurst > 0 {
		cfg.RateLimitBurst = overlay.RateLimitBurst
	}
	if overlay.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = overlay.MaxBodyBytes
	}

	durations := []struct {
		field string
		value string
		dst   *time.Duration
	}{
		{"readTimeout", overlay.ReadTimeout, &cfg.ReadTimeout},
		{"writeTimeout", overlay.WriteTimeout, &cfg.WriteTimeout},
		{"idleTimeout", overlay.IdleTimeout, &cfg.IdleTimeout},
		{"shutdownTimeout", overlay.ShutdownTimeout, &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s in config file %s: %w", d.field, path, err)
		}
		if parsed > 0 {
			*d.dst = parsed
		}
	}

	return cfg, nil
}
