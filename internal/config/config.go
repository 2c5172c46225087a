package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "5m" decode with
// time.ParseDuration semantics.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds all application configuration.
type Config struct {
	Server struct {
		GRPCAddr string `yaml:"grpc_addr"`
		APIToken string `yaml:"api_token"`
	} `yaml:"server"`
	Database struct {
		ConnectionString string `yaml:"connection_string"`
	} `yaml:"database"`
	Context struct {
		TTL                  Duration `yaml:"ttl"`
		FanoutTimeout        Duration `yaml:"fanout_timeout"`
		RecentLimit          int      `yaml:"recent_limit"`
		HistoryMonths        int      `yaml:"history_months"`
		ScheduledHorizonDays int      `yaml:"scheduled_horizon_days"`
	} `yaml:"context"`
	Ledger struct {
		MaxAge Duration `yaml:"max_age"`
	} `yaml:"ledger"`
	Janitor struct {
		SweepCron    string `yaml:"sweep_cron"`
		EvictionCron string `yaml:"eviction_cron"`
	} `yaml:"janitor"`
	Audit struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"audit"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FINPILOT_GRPC_ADDR"); v != "" {
		cfg.Server.GRPCAddr = v
	}
	if v := os.Getenv("FINPILOT_API_TOKEN"); v != "" {
		cfg.Server.APIToken = v
	}
	if v := os.Getenv("FINPILOT_DB_CONNECTION"); v != "" {
		cfg.Database.ConnectionString = v
	}
	if v := os.Getenv("FINPILOT_CONTEXT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Context.TTL = Duration(d)
		}
	}
	if v := os.Getenv("FINPILOT_LEDGER_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Ledger.MaxAge = Duration(d)
		}
	}
	if v := os.Getenv("FINPILOT_AUDIT_SQLITE_PATH"); v != "" {
		cfg.Audit.SQLitePath = v
	}

	// Defaults
	if cfg.Server.GRPCAddr == "" {
		cfg.Server.GRPCAddr = ":50051"
	}
	if cfg.Context.TTL == 0 {
		cfg.Context.TTL = Duration(5 * time.Minute)
	}
	if cfg.Context.FanoutTimeout == 0 {
		cfg.Context.FanoutTimeout = Duration(10 * time.Second)
	}
	if cfg.Context.RecentLimit == 0 {
		cfg.Context.RecentLimit = 20
	}
	if cfg.Context.HistoryMonths == 0 {
		cfg.Context.HistoryMonths = 6
	}
	if cfg.Context.ScheduledHorizonDays == 0 {
		cfg.Context.ScheduledHorizonDays = 60
	}
	if cfg.Ledger.MaxAge == 0 {
		cfg.Ledger.MaxAge = Duration(24 * time.Hour)
	}
	if cfg.Janitor.SweepCron == "" {
		cfg.Janitor.SweepCron = "0 */5 * * * *"
	}
	if cfg.Janitor.EvictionCron == "" {
		cfg.Janitor.EvictionCron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.APIToken == "" {
		return fmt.Errorf("server.api_token is required")
	}
	if c.Database.ConnectionString == "" {
		return fmt.Errorf("database.connection_string is required")
	}
	if c.Context.TTL <= 0 {
		return fmt.Errorf("context.ttl must be positive")
	}
	if c.Ledger.MaxAge <= 0 {
		return fmt.Errorf("ledger.max_age must be positive")
	}
	return nil
}
