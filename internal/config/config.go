// Package config provides runtime configuration for the simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name    string `koanf:"name"`
		Env     string `koanf:"env"`
		LogFile string `koanf:"log_file"`
	} `koanf:"app"`

	Store struct {
		CounterPath  string `koanf:"counter_path"`
		AuditLogPath string `koanf:"audit_log_path"`
		// DBPath enables the durable order archive. Empty keeps orders
		// in memory for the session only.
		DBPath string `koanf:"db_path"`
	} `koanf:"store"`

	Metrics struct {
		// Addr enables the /metrics listener when non-empty, e.g. ":9090".
		Addr string `koanf:"addr"`
	} `koanf:"metrics"`
}

// Load reads the optional YAML config file, overlays POS_-prefixed
// environment variables (nested keys with __, e.g. POS_STORE__DB_PATH) and
// fills defaults for anything left unset.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("POS_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "POS_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "pos-simulator"
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogFile == "" {
		c.App.LogFile = "pos.log"
	}
	if c.Store.CounterPath == "" {
		c.Store.CounterPath = "order_id.txt"
	}
	if c.Store.AuditLogPath == "" {
		c.Store.AuditLogPath = "order_logs.txt"
	}
}

func (c Config) Validate() error {
	if c.Store.CounterPath == "" {
		return fmt.Errorf("store.counter_path required")
	}
	if c.Store.AuditLogPath == "" {
		return fmt.Errorf("store.audit_log_path required")
	}
	return nil
}
