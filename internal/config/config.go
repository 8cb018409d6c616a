// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/amaumene/moviemood/internal/constants"
	"github.com/amaumene/moviemood/internal/metadata"
)

// Duration is a time.Duration read from "30s" style strings or from a
// number of seconds.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) set(raw interface{}) error {
	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v * float64(time.Second)))
	case int:
		*d = Duration(time.Duration(v) * time.Second)
	case string:
		parsed, err := parseDuration(v)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %v", raw)
	}
	return nil
}

// parseDuration accepts Go duration syntax or a bare number of seconds.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return parsed, nil
}

// Config holds the application configuration.
// Values come from defaults, then an optional JSON or YAML file, then
// environment variables.
type Config struct {
	// Backend
	BackendURL     string   `json:"BACKEND_URL" yaml:"BACKEND_URL" validate:"required,url"`
	RequestTimeout Duration `json:"REQUEST_TIMEOUT" yaml:"REQUEST_TIMEOUT" validate:"gt=0"`
	RateLimit      float64  `json:"RATE_LIMIT" yaml:"RATE_LIMIT" validate:"gt=0"`
	RateBurst      int      `json:"RATE_BURST" yaml:"RATE_BURST" validate:"min=1"`
	SimilarLimit   int      `json:"SIMILAR_LIMIT" yaml:"SIMILAR_LIMIT" validate:"min=1,max=20"`

	// Catalog cache
	CatalogCacheTTL Duration `json:"CATALOG_CACHE_TTL" yaml:"CATALOG_CACHE_TTL" validate:"gt=0"`

	// Posters
	ImageBaseURL      string `json:"IMAGE_BASE_URL" yaml:"IMAGE_BASE_URL" validate:"required,url"`
	GridPosterSize    string `json:"GRID_POSTER_SIZE" yaml:"GRID_POSTER_SIZE" validate:"required"`
	SimilarPosterSize string `json:"SIMILAR_POSTER_SIZE" yaml:"SIMILAR_POSTER_SIZE" validate:"required"`
	DetailPosterSize  string `json:"DETAIL_POSTER_SIZE" yaml:"DETAIL_POSTER_SIZE" validate:"required"`

	// Logging
	LogLevel string `json:"LOG_LEVEL" yaml:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFile  string `json:"LOG_FILE" yaml:"LOG_FILE"`

	// Remote control surface, disabled when empty
	HTTPAddr string `json:"HTTP_ADDR" yaml:"HTTP_ADDR"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		BackendURL:        constants.DefaultBackendURL,
		RequestTimeout:    Duration(constants.RequestTimeout),
		RateLimit:         constants.DefaultRateLimit,
		RateBurst:         constants.DefaultRateBurst,
		SimilarLimit:      constants.DefaultSimilarLimit,
		CatalogCacheTTL:   Duration(constants.CatalogCacheTTL),
		ImageBaseURL:      constants.DefaultImageBaseURL,
		GridPosterSize:    constants.GridPosterSize,
		SimilarPosterSize: constants.SimilarPosterSize,
		DetailPosterSize:  constants.DetailPosterSize,
		LogLevel:          constants.DefaultLogLevel,
	}
}

// Load reads configuration from the OS file system and environment.
func Load() (*Config, error) {
	return LoadFrom(afero.NewOsFs())
}

// LoadFrom reads the optional config file from fs, then applies environment
// variables, which take precedence over file values.
// Returns an error if the configuration is invalid.
func LoadFrom(fs afero.Fs) (*Config, error) {
	cfg := Default()

	configFile := getEnvOrDefault("CONFIG_FILE", constants.DefaultConfigFile)
	if err := cfg.loadFromFile(fs, configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile decodes a JSON file, or YAML for .yaml and .yml names.
func (c *Config) loadFromFile(fs afero.Fs, filename string) error {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	setString(&c.BackendURL, "BACKEND_URL")
	setString(&c.ImageBaseURL, "IMAGE_BASE_URL")
	setString(&c.GridPosterSize, "GRID_POSTER_SIZE")
	setString(&c.SimilarPosterSize, "SIMILAR_POSTER_SIZE")
	setString(&c.DetailPosterSize, "DETAIL_POSTER_SIZE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFile, "LOG_FILE")
	setString(&c.HTTPAddr, "HTTP_ADDR")

	if v := os.Getenv("SIMILAR_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIMILAR_LIMIT: %w", err)
		}
		c.SimilarLimit = n
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_BURST: %w", err)
		}
		c.RateBurst = n
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		c.RateLimit = f
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = Duration(d)
	}
	if v := os.Getenv("CATALOG_CACHE_TTL"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
		}
		c.CatalogCacheTTL = Duration(d)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")

	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.HTTPAddr != "" {
		if _, _, err := net.SplitHostPort(c.HTTPAddr); err != nil {
			return fmt.Errorf("HTTP_ADDR %q: %w", c.HTTPAddr, err)
		}
	}
	return nil
}

// Posters returns the poster URL settings derived from this configuration.
func (c *Config) Posters() metadata.Posters {
	p := metadata.DefaultPosters()
	p.BaseURL = c.ImageBaseURL
	p.GridSize = c.GridPosterSize
	p.SimilarSize = c.SimilarPosterSize
	p.DetailSize = c.DetailPosterSize
	return p
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
