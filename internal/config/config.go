package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the conventional config file name.
const FileName = "ledgerlab.yaml"

// DateLayout is the layout of simulation.period_start.
const DateLayout = "2006-01-02"

// Config represents the top-level ledgerlab.yaml configuration.
type Config struct {
	Simulation  SimulationConfig  `yaml:"simulation"`
	Storage     StorageConfig     `yaml:"storage"`
	ActivityLog ActivityLogConfig `yaml:"activity_log"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SimulationConfig controls the simulated period.
type SimulationConfig struct {
	Company     string `yaml:"company,omitempty"`
	Seed        uint64 `yaml:"seed"`         // 0 seeds from the clock
	PeriodStart string `yaml:"period_start"` // "YYYY-MM-DD"
	PeriodDays  int    `yaml:"period_days"`
}

// StorageConfig locates the save file.
type StorageConfig struct {
	SavePath string `yaml:"save_path"`
	AutoSave bool   `yaml:"auto_save"`
}

// ActivityLogConfig locates the activity CSV. An empty path disables it.
type ActivityLogConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig sets the zap level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a ledgerlab.yaml file from disk. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(company string) *Config {
	return &Config{
		Simulation: SimulationConfig{
			Company:     company,
			PeriodStart: "2025-03-01",
			PeriodDays:  30,
		},
		Storage: StorageConfig{
			SavePath: "ledgerlab-save.json",
			AutoSave: true,
		},
		ActivityLog: ActivityLogConfig{
			Path: "logs/activity-log.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Start parses simulation.period_start.
func (c *Config) Start() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.Simulation.PeriodStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing period_start %q: %w", c.Simulation.PeriodStart, err)
	}
	return t, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Start(); err != nil {
		errs = append(errs, err)
	}
	if c.Simulation.PeriodDays < 1 {
		errs = append(errs, fmt.Errorf("period_days must be positive, got %d", c.Simulation.PeriodDays))
	}
	if c.Storage.SavePath == "" {
		errs = append(errs, errors.New("save_path is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
