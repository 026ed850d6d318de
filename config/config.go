package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI configuration.
type Config struct {
	DataDir     string  `yaml:"data_dir"`
	SyncOnWrite bool    `yaml:"sync_on_write"`
	Logging     Logging `yaml:"logging"`
	Reports     Reports `yaml:"reports"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// Reports names the output files of the report generators.
type Reports struct {
	MasterFile   string `yaml:"master_file"`
	DetailedFile string `yaml:"detailed_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: "./data",
		Logging: Logging{Level: "info"},
		Reports: Reports{
			MasterFile:   "master_report.txt",
			DetailedFile: "detailed_summary_report.txt",
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
