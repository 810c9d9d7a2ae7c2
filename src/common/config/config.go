package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jack-barr3tt/comboios/src/common/comboios"
)

type Config struct {
	HTTPAddr        string
	RequestTimeout  time.Duration
	UpstreamTimeout time.Duration
	StationsBaseURL string
	TrainsBaseURL   string
	LogLevel        string
}

// Load reads the environment, after loading envPath (default .env) when it
// exists.
func Load(envPath string) (*Config, error) {
	if envPath == "" {
		envPath = ".env"
	}
	_ = godotenv.Load(envPath)

	requestTimeout, err := getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	upstreamTimeout, err := getEnvAsDuration("UPSTREAM_TIMEOUT", comboios.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", "127.0.0.1:3000"),
		RequestTimeout:  requestTimeout,
		UpstreamTimeout: upstreamTimeout,
		StationsBaseURL: getEnv("STATIONS_BASE_URL", comboios.StationsBaseURL),
		TrainsBaseURL:   getEnv("TRAINS_BASE_URL", comboios.TrainsBaseURL),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}, nil
}

// NewAPI builds the facade described by the config.
func (c *Config) NewAPI(opts ...comboios.Option) *comboios.API {
	base := []comboios.Option{
		comboios.DefaultRequestTimeout(c.UpstreamTimeout),
		comboios.BaseURLs(c.StationsBaseURL, c.TrainsBaseURL),
	}
	return comboios.New(append(base, opts...)...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, value)
	}
	return duration, nil
}
