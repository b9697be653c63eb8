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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blakeblackwell-persefoni/calcd/pkg/defaults"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.RateLimit != 100 {
		t.Errorf("expected default rate limit 100, got %v", cfg.RateLimit)
	}
	if cfg.RateLimitBurst != 200 {
		t.Errorf("expected default burst 200, got %d", cfg.RateLimitBurst)
	}
	if cfg.MaxBodyBytes != defaults.MaxRequestBodyBytes {
		t.Errorf("expected default max body bytes %d, got %d", defaults.MaxRequestBodyBytes, cfg.MaxBodyBytes)
	}
	if cfg.ReadTimeout != defaults.ServerReadTimeout {
		t.Errorf("expected default read timeout %v, got %v", defaults.ServerReadTimeout, cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")

	cfg := NewConfig()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090 from env, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("expected shutdown timeout 45s from env, got %v", cfg.ShutdownTimeout)
	}
}

func TestNewConfig_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-5")

	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("expected invalid PORT to keep default 8080, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected negative shutdown seconds to keep default, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
name: calcd-staging
address: 127.0.0.1
port: 9191
rateLimit: 50
rateLimitBurst: 75
maxBodyBytes: 2097152
readTimeout: 15s
shutdownTimeout: 1m
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "calcd-staging" {
		t.Errorf("expected name calcd-staging, got %s", cfg.Name)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("expected address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Port != 9191 {
		t.Errorf("expected port 9191, got %d", cfg.Port)
	}
	if cfg.RateLimit != 50 {
		t.Errorf("expected rate limit 50, got %v", cfg.RateLimit)
	}
	if cfg.RateLimitBurst != 75 {
		t.Errorf("expected burst 75, got %d", cfg.RateLimitBurst)
	}
	if cfg.MaxBodyBytes != 2097152 {
		t.Errorf("expected max body bytes 2097152, got %d", cfg.MaxBodyBytes)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("expected read timeout 15s, got %v", cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeout != time.Minute {
		t.Errorf("expected shutdown timeout 1m, got %v", cfg.ShutdownTimeout)
	}

	// Fields absent from the file keep their defaults.
	if cfg.WriteTimeout != defaults.ServerWriteTimeout {
		t.Errorf("expected default write timeout %v, got %v", defaults.ServerWriteTimeout, cfg.WriteTimeout)
	}
	if cfg.IdleTimeout != defaults.ServerIdleTimeout {
		t.Errorf("expected default idle timeout %v, got %v", defaults.ServerIdleTimeout, cfg.IdleTimeout)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("readTimeout: fifteen\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("port: [not a number"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}
