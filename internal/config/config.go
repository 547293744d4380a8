// Package config loads comparison settings from a TOML file, an optional .env file and the
// process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override file settings.
const (
	EnvMetrics           = "SIMILARITY_METRICS"
	EnvIncludeStopWords  = "SIMILARITY_INCLUDE_STOP_WORDS"
	EnvDocumentFrequency = "SIMILARITY_DOCUMENT_FREQUENCY"
	EnvWorkers           = "SIMILARITY_WORKERS"
	EnvLogLevel          = "SIMILARITY_LOG_LEVEL"
)

// Config mirrors the options of a comparison run.
type Config struct {
	Metrics           []string `toml:"metrics"`
	IncludeStopWords  bool     `toml:"include_stop_words"`
	DocumentFrequency string   `toml:"document_frequency"`
	Workers           int      `toml:"workers"`
	LogLevel          string   `toml:"log_level"` // debug, info, warn or error; empty disables logging
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Metrics:           []string{"cosine", "levenshtein", "normalized_levenshtein", "jaccard", "tfidf"},
		IncludeStopWords:  false,
		DocumentFrequency: "raw_text",
		Workers:           1,
		LogLevel:          "",
	}
}

// Load starts from Default, then applies the TOML file at path, the .env file at envPath
// and finally the process environment. Either path may be empty or point at a missing
// file; a file that exists but cannot be parsed is an error.
func Load(path, envPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		values, err := godotenv.Read(envPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("parse env file %s: %w", envPath, err)
		default:
			dotenv = values
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMetrics); ok {
		c.Metrics = strings.Split(v, ",")
	}
	if v, ok := lookup(EnvIncludeStopWords); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIncludeStopWords, err)
		}
		c.IncludeStopWords = b
	}
	if v, ok := lookup(EnvDocumentFrequency); ok {
		c.DocumentFrequency = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) normalize() {
	metrics := make([]string, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			metrics = append(metrics, m)
		}
	}
	c.Metrics = metrics
	c.DocumentFrequency = strings.ToLower(strings.TrimSpace(c.DocumentFrequency))
	if c.DocumentFrequency == "" {
		c.DocumentFrequency = Default().DocumentFrequency
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks the values that do not depend on other packages. Metric names and the
// document frequency mode are resolved by the caller.
func (c *Config) Validate() error {
	if len(c.Metrics) == 0 {
		return errors.New("metrics must list at least one metric")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}
