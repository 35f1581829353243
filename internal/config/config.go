package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bevintel/internal/artifacts"
	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/region"
)

// Config holds runtime settings. Static tables live in Tables, constructed
// once and passed into the pipeline explicitly.
type Config struct {
	OutputDir  string
	TablesPath string
	Debug      bool
}

// Load builds the config from defaults plus environment overrides.
func Load() (*Config, error) {
	cfg := &Config{
		OutputDir:  ".",
		TablesPath: "configs/tables.yaml",
	}

	cfg.OutputDir = getEnvOrDefault("OUTPUT_DIR", cfg.OutputDir)
	cfg.TablesPath = getEnvOrDefault("TABLES_CONFIG_PATH", cfg.TablesPath)
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Tables is the immutable configuration data the pipeline consumes: the feed
// table, region definitions, keyword dictionaries and market figures.
type Tables struct {
	Feeds        []feeds.Descriptor
	Regions      []region.Definition
	Include      []string
	Exclude      []string
	Dictionaries enrich.Dictionaries
	Market       map[string]artifacts.MarketFigures
}

// tablesFile is the YAML override shape. Only the data tables can be
// overridden; the keyword dictionaries are behavior contracts and stay
// compiled in.
type tablesFile struct {
	Feeds   []feeds.Descriptor                  `yaml:"feeds"`
	Regions []region.Definition                 `yaml:"regions"`
	Market  map[string]artifacts.MarketFigures `yaml:"market"`
}

// LoadTables returns the built-in tables, with the feed/region/market tables
// replaced by the YAML file at path when it exists.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()

	if path == "" {
		return tables, nil
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tables, nil
	}
	if err != nil {
		return tables, fmt.Errorf("read tables config: %w", err)
	}

	var file tablesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return tables, fmt.Errorf("parse tables config: %w", err)
	}

	if len(file.Feeds) > 0 {
		tables.Feeds = file.Feeds
	}
	if len(file.Regions) > 0 {
		tables.Regions = file.Regions
	}
	if len(file.Market) > 0 {
		tables.Market = file.Market
	}

	return tables, nil
}
