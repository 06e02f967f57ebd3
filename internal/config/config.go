package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"expense-analyzer/internal/models"
)

type Config struct {
	Server  ServerConfig
	Limits  LimitsConfig
	Summary SummaryConfig
	Sample  SampleConfig
}

type ServerConfig struct {
	Port string
	// Host is the listen interface. Empty binds all interfaces.
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type LimitsConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type SummaryConfig struct {
	// IncomeCategories lists the categories whose positive amounts are
	// treated as income rather than spend.
	IncomeCategories []string
	TopN             int
}

type SampleConfig struct {
	DefaultRows int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", ""),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			CORSAllowOrigins: getListEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Limits: LimitsConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Summary: SummaryConfig{
			IncomeCategories: getListEnv("SUMMARY_INCOME_CATEGORIES", []string{models.CategoryInvestment}),
			TopN:             getIntEnv("SUMMARY_TOP_N", 5),
		},
		Sample: SampleConfig{
			DefaultRows: getIntEnv("SAMPLE_DEFAULT_ROWS", 120),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
