// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = 5001
	defaultModelURL = "https://api-inference.huggingface.co/models/google/flan-t5-large"
	defaultTimeout  = 30 * time.Second

	ProviderHuggingFace = "huggingface"
	ProviderMock        = "mock"
)

type Config struct {
	Port            int
	APIKey          string
	ModelURL        string
	Provider        string
	UpstreamTimeout time.Duration
	LogJSON         bool
	Debug           bool
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing values fall back to defaults; an absent API key is not
// an error here, it surfaces when the upstream client is first used.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:            defaultPort,
		APIKey:          os.Getenv("HUGGINGFACE_API_KEY"),
		ModelURL:        defaultModelURL,
		Provider:        ProviderHuggingFace,
		UpstreamTimeout: defaultTimeout,
		LogJSON:         boolEnv("LOG_JSON"),
		Debug:           boolEnv("DEBUG"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("HF_MODEL_URL"); v != "" {
		cfg.ModelURL = v
	}

	if v := os.Getenv("AI_PROVIDER"); v != "" {
		cfg.Provider = v
	}

	if v := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.UpstreamTimeout = time.Duration(secs) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("config error: upstream timeout must be positive")
	}
	if c.Provider != ProviderHuggingFace && c.Provider != ProviderMock {
		return fmt.Errorf("config error: unknown AI_PROVIDER %q", c.Provider)
	}
	return nil
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
