package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Panels  PanelsConfig  `yaml:"panels"`
	Sampler SamplerConfig `yaml:"sampler"`
	Routes  RoutesConfig  `yaml:"routes"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port                   int           `yaml:"port"`
	RateLimitPerSec        float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst         int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds        int           `yaml:"cache_ttl_seconds"`
	CacheTTL               time.Duration `yaml:"-"`
	ShutdownTimeoutSeconds int           `yaml:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `yaml:"-"`
	Gzip                   *bool         `yaml:"gzip"`
}

// PanelsConfig describes the simulated fleet.
type PanelsConfig struct {
	Count       int `yaml:"count"`
	DefectiveID int `yaml:"defective_id"`
}

// SamplerConfig selects the energy model.
type SamplerConfig struct {
	Strategy string         `yaml:"strategy"`
	Timezone string         `yaml:"timezone"`
	Location *time.Location `yaml:"-"`
}

// RoutesConfig toggles optional routes.
type RoutesConfig struct {
	// BareCodeLookup also mounts GET /:code next to GET /panel/code/:code.
	BareCodeLookup bool `yaml:"bare_code_lookup"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

const (
	DefaultPort        = 3000
	DefaultPanelCount  = 5
	DefaultDefectiveID = 3
	DefaultStrategy    = "diurnal"
)

// GzipEnabled reports whether responses should be compressed.
func (s ServerConfig) GzipEnabled() bool {
	return s.Gzip == nil || *s.Gzip
}

// Load reads the configuration from the given path. A missing file yields the defaults.
// Environment variables (PORT, PANELS_COUNT, PANELS_DEFECTIVE_ID, SAMPLER_STRATEGY,
// SAMPLER_TIMEZONE, ROUTES_BARE_CODE_LOOKUP, LOG_LEVEL) override file values.
func Load(path string) (*Config, error) {
	cfg := Config{
		Panels: PanelsConfig{DefectiveID: DefaultDefectiveID},
	}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 5
	}
	cfg.Server.ShutdownTimeout = time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second

	if cfg.Panels.Count == 0 {
		cfg.Panels.Count = DefaultPanelCount
	}
	if cfg.Sampler.Strategy == "" {
		cfg.Sampler.Strategy = DefaultStrategy
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	v := viper.New()
	v.SetDefault("PORT", cfg.Server.Port)
	v.SetDefault("PANELS_COUNT", cfg.Panels.Count)
	v.SetDefault("PANELS_DEFECTIVE_ID", cfg.Panels.DefectiveID)
	v.SetDefault("SAMPLER_STRATEGY", cfg.Sampler.Strategy)
	v.SetDefault("SAMPLER_TIMEZONE", cfg.Sampler.Timezone)
	v.SetDefault("ROUTES_BARE_CODE_LOOKUP", cfg.Routes.BareCodeLookup)
	v.SetDefault("LOG_LEVEL", cfg.Log.Level)
	v.AutomaticEnv()

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &cfg.Server.Port},
		{"PANELS_COUNT", &cfg.Panels.Count},
		{"PANELS_DEFECTIVE_ID", &cfg.Panels.DefectiveID},
	}
	for _, i := range ints {
		// GetInt would turn garbage into 0 and silently fall back to the default.
		n, err := strconv.Atoi(v.GetString(i.key))
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", i.key, v.GetString(i.key))
		}
		*i.dst = n
	}
	cfg.Sampler.Strategy = v.GetString("SAMPLER_STRATEGY")
	cfg.Sampler.Timezone = v.GetString("SAMPLER_TIMEZONE")
	cfg.Routes.BareCodeLookup = v.GetBool("ROUTES_BARE_CODE_LOOKUP")
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Panels.Count < 1 {
		return fmt.Errorf("panels.count must be at least 1, got %d", c.Panels.Count)
	}
	switch c.Sampler.Strategy {
	case "diurnal", "flat":
	default:
		return fmt.Errorf("unknown sampler.strategy %q", c.Sampler.Strategy)
	}

	c.Sampler.Location = time.Local
	if c.Sampler.Timezone != "" {
		loc, err := time.LoadLocation(c.Sampler.Timezone)
		if err != nil {
			return fmt.Errorf("sampler.timezone: %w", err)
		}
		c.Sampler.Location = loc
	}
	return nil
}
