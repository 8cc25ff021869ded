package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPG = "pgdriver"
	DriverPQ = "pq"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	defaultOutputDir = "."
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Export   ExportConfig   `yaml:"export"`
}

type DatabaseConfig struct {
	URL    string `yaml:"url"`
	Driver string `yaml:"driver"`
	Debug  bool   `yaml:"debug"`
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
}

// LoadConfig reads the yaml file at path (a missing file is not an error),
// loads .env into the process environment and applies env overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	cfg.applyEnv()
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Database.Debug = b
		}
	}
	if v := os.Getenv("EXPORT_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("EXPORT_FORMAT"); v != "" {
		c.Export.Format = v
	}
}

func (c *Config) setDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPG
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = defaultOutputDir
	}
	if c.Export.Format == "" {
		c.Export.Format = FormatCSV
	}
	c.Export.Format = strings.ToLower(c.Export.Format)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return errors.New("DATABASE_URL is not set")
	}
	switch c.Database.Driver {
	case DriverPG, DriverPQ:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	switch c.Export.Format {
	case FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("unsupported export format: %q", c.Export.Format)
	}
	return nil
}
