package config

import (
	"testing"
	"time"

	"expense-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)

	assert.Equal(t, 10, cfg.Limits.RateLimitPerSecond)
	assert.Equal(t, 20, cfg.Limits.RateLimitBurst)

	assert.Equal(t, []string{models.CategoryInvestment}, cfg.Summary.IncomeCategories)
	assert.Equal(t, 5, cfg.Summary.TopN)
	assert.Equal(t, 120, cfg.Sample.DefaultRows)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_PER_SECOND", "50")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("SUMMARY_INCOME_CATEGORIES", "Investment, Salary")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, 50, cfg.Limits.RateLimitPerSecond)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"Investment", "Salary"}, cfg.Summary.IncomeCategories)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("SUMMARY_INCOME_CATEGORIES", " , ,")

	cfg := Load()

	assert.Equal(t, 10, cfg.Limits.RateLimitPerSecond)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{models.CategoryInvestment}, cfg.Summary.IncomeCategories)
}

func TestEnvironmentChecks(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Environment: "development"}}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Environment = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
