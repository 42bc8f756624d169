// Package config loads xerplan settings from defaults, an optional YAML file
// and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/xerplan/internal/xer"
)

// Environment variables read by Load.
const (
	EnvConfigPath  = "XERPLAN_CONFIG"
	EnvDBPath      = "XERPLAN_DB"
	EnvLogLevel    = "XERPLAN_LOG_LEVEL"
	EnvLogFormat   = "XERPLAN_LOG_FORMAT"
	EnvHoursPerDay = "XERPLAN_HOURS_PER_DAY"
	EnvStrict      = "XERPLAN_STRICT"
)

type Config struct {
	DB       DBConfig       `yaml:"db"`
	Log      LogConfig      `yaml:"log"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ScheduleConfig holds defaults for import and reporting commands.
type ScheduleConfig struct {
	HoursPerDay float64 `yaml:"hours_per_day"`
	Strict      bool    `yaml:"strict"`
}

// Default returns the built-in configuration. The database lives under
// ~/.xerplan, or the working directory when no home directory is known.
func Default() Config {
	dbPath := filepath.Join(".xerplan", "xerplan.db")
	if home, err := homedir.Dir(); err == nil {
		dbPath = filepath.Join(home, ".xerplan", "xerplan.db")
	}
	return Config{
		DB:       DBConfig{Path: dbPath},
		Log:      LogConfig{Level: "warn", Format: "text"},
		Schedule: ScheduleConfig{HoursPerDay: xer.DefaultHoursPerDay},
	}
}

// Load builds the effective configuration and validates it.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvHoursPerDay); v != "" {
		hpd, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvHoursPerDay, err)
		}
		cfg.Schedule.HoursPerDay = hpd
	}
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvStrict, err)
		}
		cfg.Schedule.Strict = strict
	}

	cfg.DB.Path = expandHome(cfg.DB.Path)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the commands cannot run with.
func (c Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.Schedule.HoursPerDay <= 0 {
		return fmt.Errorf("schedule.hours_per_day must be positive, got %g", c.Schedule.HoursPerDay)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (expected text or json)", c.Log.Format)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// expandHome resolves a leading "~". Paths it cannot expand are kept as is.
func expandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
