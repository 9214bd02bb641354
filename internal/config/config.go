package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// Precedence, lowest to highest: built-in defaults, YAML file, environment
// variables (prefix SALES).
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Enrichment EnrichmentConfig `yaml:"enrichment" envconfig:"ENRICHMENT"`
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Analytics  AnalyticsConfig  `yaml:"analytics" envconfig:"ANALYTICS"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// EnrichmentConfig contains the product catalog client configuration.
type EnrichmentConfig struct {
	Enabled bool          `yaml:"enabled" envconfig:"ENABLED"`
	BaseURL string        `yaml:"base_url" envconfig:"BASE_URL" validate:"url"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
	RPS     float64       `yaml:"rps" envconfig:"RPS" validate:"gt=0"`
	Burst   int           `yaml:"burst" envconfig:"BURST" validate:"gt=0"`
}

// ServerConfig contains HTTP server configuration for serve mode.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// AnalyticsConfig contains report sizing knobs.
type AnalyticsConfig struct {
	TopProducts           int `yaml:"top_products" envconfig:"TOP_PRODUCTS" validate:"min=1"`
	TopCustomers          int `yaml:"top_customers" envconfig:"TOP_CUSTOMERS" validate:"min=1"`
	TrendDays             int `yaml:"trend_days" envconfig:"TREND_DAYS" validate:"min=1"`
	LowPerformerThreshold int `yaml:"low_performer_threshold" envconfig:"LOW_PERFORMER_THRESHOLD" validate:"min=1"`
	LowPerformerListLimit int `yaml:"low_performer_list_limit" envconfig:"LOW_PERFORMER_LIST_LIMIT" validate:"min=1"`
	UnenrichedListLimit   int `yaml:"unenriched_list_limit" envconfig:"UNENRICHED_LIST_LIMIT" validate:"min=1"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/salescli.log",
		},
		Enrichment: EnrichmentConfig{
			Enabled: true,
			BaseURL: "https://dummyjson.com",
			Timeout: 5 * time.Second,
			RPS:     10,
			Burst:   5,
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Analytics: AnalyticsConfig{
			TopProducts:           5,
			TopCustomers:          5,
			TrendDays:             10,
			LowPerformerThreshold: 10,
			LowPerformerListLimit: 5,
			UnenrichedListLimit:   10,
		},
		Paths: DefaultPathsConfig(),
	}
}

// Load loads configuration from the given YAML file (if it exists) and the
// environment, then validates the result.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	// Environment variables take precedence over the file.
	if err := envconfig.Process("SALES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid value for %s (rule %s)", first.Namespace(), first.Tag())
		}
		return err
	}
	return nil
}
