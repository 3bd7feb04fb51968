// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the engine configuration from environment
// variables, an optional JSON file, and built-in defaults. Layers are merged
// with mergo: environment values win over file values, file values win over
// defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Config holds everything the vault engine needs to reach the server and
// place its local cache.
type Config struct {
	// ServerURL is the base URL of the remote vault service.
	ServerURL string `env:"VAULT_SERVER_URL" json:"server_url"`
	// CachePath is the sqlite file holding the encrypted local mirror.
	// ":memory:" keeps the cache process-local.
	CachePath string `env:"VAULT_CACHE_DB" json:"cache_path"`
	// FileCacheDir is where attachment temp files are staged.
	FileCacheDir string `env:"VAULT_FILE_CACHE" json:"file_cache_dir"`
	// RequestTimeout bounds individual server calls.
	RequestTimeout time.Duration `env:"VAULT_REQUEST_TIMEOUT" json:"request_timeout"`
	// SyncInterval is the background sync period; zero disables the job.
	SyncInterval time.Duration `env:"VAULT_SYNC_INTERVAL" json:"sync_interval"`
	// ConfigFile points at an optional JSON config layer.
	ConfigFile string `env:"VAULT_CONFIG" json:"-"`
}

func defaults() *Config {
	return &Config{
		ServerURL:      "http://localhost:8080",
		CachePath:      ":memory:",
		FileCacheDir:   os.TempDir(),
		RequestTimeout: 15 * time.Second,
		SyncInterval:   5 * time.Minute,
	}
}

// Load builds the effective configuration: env over JSON file over defaults.
func Load() (*Config, error) {
	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	merged := &Config{}
	if err := mergo.Merge(merged, envCfg); err != nil {
		return nil, fmt.Errorf("error merging env config: %w", err)
	}

	if envCfg.ConfigFile != "" {
		fileCfg, err := parseJSON(envCfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err = mergo.Merge(merged, fileCfg); err != nil {
			return nil, fmt.Errorf("error merging file config: %w", err)
		}
	}

	if err := mergo.Merge(merged, defaults()); err != nil {
		return nil, fmt.Errorf("error merging default config: %w", err)
	}

	return merged, merged.validate()
}

func parseJSON(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	if err = json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return errors.New("server url must not be empty")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	return nil
}
