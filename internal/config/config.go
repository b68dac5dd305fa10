package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "collatz.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Store kinds.
const (
	StoreNone   = "none"
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config is the full set of knobs shared by the CLI subcommands.
type Config struct {
	MaxSteps   int    `mapstructure:"max_steps" json:"max_steps"`
	ShowSteps  bool   `mapstructure:"show_steps" json:"show_steps"`
	ShowResult bool   `mapstructure:"show_result" json:"show_result"`
	Format     string `mapstructure:"format" json:"format"`
	LogLevel   string `mapstructure:"log_level" json:"log_level"`
	Color      bool   `mapstructure:"color" json:"color"`
	Summary    bool   `mapstructure:"summary" json:"summary"`

	Store  StoreConfig  `mapstructure:"store" json:"store"`
	Server ServerConfig `mapstructure:"server" json:"server"`
}

// StoreConfig selects and configures the result cache.
type StoreConfig struct {
	Kind          string        `mapstructure:"kind" json:"kind"`
	Path          string        `mapstructure:"path" json:"path"`
	RedisAddr     string        `mapstructure:"redis_addr" json:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password" json:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" json:"redis_db"`
	Prefix        string        `mapstructure:"prefix" json:"prefix"`
	TTL           time.Duration `mapstructure:"ttl" json:"ttl"`
}

// ServerConfig configures `collatz serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr" json:"addr"`
}

// Default returns the configuration used when no file is present.
// It reproduces the classic batch: results shown, steps hidden, no cache.
func Default() Config {
	return Config{
		MaxSteps:   domain.DefaultMaxSteps,
		ShowResult: true,
		Format:     FormatText,
		LogLevel:   "warn",
		Color:      true,
		Store: StoreConfig{
			Kind:      StoreNone,
			Path:      ".collatz/results",
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a YAML or JSON file (chosen by extension) on top of Default.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode merges a generic map into cfg. Durations accept strings like "10m".
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("invalid config: max_steps must be positive, got %d", c.MaxSteps)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid config: unknown format %q", c.Format)
	}
	switch c.Store.Kind {
	case StoreNone, StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("invalid config: unknown store kind %q", c.Store.Kind)
	}
	return nil
}
