// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. HAPPIEST_LOG_LEVEL.
const EnvPrefix = "HAPPIEST"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ingest struct {
		// Delimiters lists the candidate delimiter characters in tie-break
		// order, e.g. ",;\t|".
		Delimiters string `mapstructure:"delimiters" yaml:"delimiters"`
		SampleSize int    `mapstructure:"sample_size" yaml:"sample_size"`
	} `mapstructure:"ingest" yaml:"ingest"`

	Matcher struct {
		Threshold      float64 `mapstructure:"threshold" yaml:"threshold"`
		VocabularyFile string  `mapstructure:"vocabulary_file" yaml:"vocabulary_file"`
	} `mapstructure:"matcher" yaml:"matcher"`

	Catalog struct {
		File            string `mapstructure:"file" yaml:"file"`
		CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Output struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"output" yaml:"output"`

	Workers int `mapstructure:"workers" yaml:"workers"`
}

// InitializeConfig loads defaults, then the config file, then HAPPIEST_*
// environment variables. When configFile is empty, config.yaml is searched
// for in ~/.happiest-ingest, ./.happiest-ingest and the working directory,
// and a missing file is not an error.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.happiest-ingest")
		v.AddConfigPath(".happiest-ingest")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ingest.delimiters", ",;\t|")
	v.SetDefault("ingest.sample_size", 10)

	v.SetDefault("matcher.threshold", 0.68)
	v.SetDefault("matcher.vocabulary_file", "")

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.cache_ttl_seconds", 300)

	v.SetDefault("output.format", "json")
	v.SetDefault("output.delimiter", ",")

	v.SetDefault("workers", runtime.NumCPU())
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Ingest.Delimiters == "" {
		return fmt.Errorf("ingest.delimiters must list at least one character")
	}
	seen := make(map[rune]bool)
	for _, r := range config.Ingest.Delimiters {
		if r == '"' || r == '\n' || r == '\r' {
			return fmt.Errorf("ingest.delimiters must not contain quotes or line breaks, got: %q", config.Ingest.Delimiters)
		}
		if seen[r] {
			return fmt.Errorf("ingest.delimiters lists %q twice", r)
		}
		seen[r] = true
	}

	if config.Ingest.SampleSize < 1 {
		return fmt.Errorf("ingest.sample_size must be at least 1, got: %d", config.Ingest.SampleSize)
	}

	if config.Matcher.Threshold <= 0.0 || config.Matcher.Threshold > 1.0 {
		return fmt.Errorf("matcher.threshold must be greater than 0.0 and at most 1.0, got: %f", config.Matcher.Threshold)
	}

	if config.Catalog.CacheTTLSeconds < 0 {
		return fmt.Errorf("catalog.cache_ttl_seconds must not be negative, got: %d", config.Catalog.CacheTTLSeconds)
	}

	if config.Output.Format != "json" && config.Output.Format != "csv" {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'csv')", config.Output.Format)
	}

	if utf8.RuneCountInString(config.Output.Delimiter) != 1 {
		return fmt.Errorf("output delimiter must be a single character, got: %s", config.Output.Delimiter)
	}

	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got: %d", config.Workers)
	}

	return nil
}

// IngestDelimiters returns the candidate delimiters as runes.
func (c *Config) IngestDelimiters() []rune {
	return []rune(c.Ingest.Delimiters)
}

// OutputDelimiter returns the CSV output delimiter.
func (c *Config) OutputDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Output.Delimiter)
	return r
}

// CatalogCacheTTL returns the catalog cache lifetime.
func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.Catalog.CacheTTLSeconds) * time.Second
}

// NewLogger builds the application logger from the log settings.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}

// Warnf prints a configuration warning before a logger exists.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
