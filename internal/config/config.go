// package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// server
	HTTPPort int

	// nats
	NatsURL string

	// llm (task generation)
	LLMBaseURL     string
	LLMModel       string
	LLMAPIKey      string
	LLMMaxTokens   int
	LLMTemperature float64
	LLMTimeoutSec  int

	// artificial response delay for the intake frontend, 0 disables it
	SimulatedDelayMS int

	// logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 3100),
		NatsURL:          getEnv("NATS_URL", "nats://localhost:4222"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", ""),
		LLMModel:         getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		LLMAPIKey:        getEnv("OPENAI_API_KEY", ""),
		LLMMaxTokens:     getEnvInt("LLM_MAX_TOKENS", 300),
		LLMTimeoutSec:    getEnvInt("LLM_TIMEOUT_SECONDS", 30),
		SimulatedDelayMS: getEnvInt("SIMULATED_DELAY_MS", 0),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}

	cfg.LLMTemperature = getEnvFloat("LLM_TEMPERATURE", 0.7)

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
