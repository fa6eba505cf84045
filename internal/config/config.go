package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides. Nested keys use a double
// underscore, e.g. COURSEPLAN_PLANNER__MAX_CREDITS=18.
const EnvPrefix = "COURSEPLAN_"

type Config struct {
	Database DatabaseConfig `json:"database"`
	Catalog  CatalogConfig  `json:"catalog"`
	Planner  PlannerConfig  `json:"planner"`
	Logging  LoggingConfig  `json:"logging"`
	Server   ServerConfig   `json:"server"`
	Metrics  MetricsConfig  `json:"metrics"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		Planner: DefaultPlannerConfig(),
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Server:  ServerConfig{Addr: ":4000", ReadTimeoutSeconds: 10, WriteTimeoutSeconds: 30},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads an optional YAML or JSON file, applies COURSEPLAN_* environment
// overrides on top, fills remaining defaults and validates the result. An
// empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Database.SetDefaults(); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if err := c.Planner.Validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

type DatabaseConfig struct {
	// Path is the SQLite file; ":memory:" is accepted for throwaway runs.
	Path string `json:"path"`
}

// SetDefaults falls back to $COURSEPLAN_DB, then ~/.courseplan/courseplan.db.
func (c *DatabaseConfig) SetDefaults() error {
	if c.Path != "" {
		return nil
	}
	if p := os.Getenv("COURSEPLAN_DB"); p != "" {
		c.Path = p
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	c.Path = filepath.Join(home, ".courseplan", "courseplan.db")
	return nil
}

// CatalogConfig names a catalog file imported on startup when the database
// holds no courses yet.
type CatalogConfig struct {
	Path string `json:"path"`
}
