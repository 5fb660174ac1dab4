package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.EqualValues(t, "MYR", cfg.BaseCurrency)
	assert.EqualValues(t, "USD", cfg.DefaultTarget)
	assert.Equal(t, "https://api.frankfurter.app", cfg.RatesURL)
	assert.Equal(t, "http://ip-api.com", cfg.GeoURL)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProduction)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("BASE_CURRENCY", "eur")
	v.Set("REFRESH_INTERVAL", "30s")
	v.Set("HISTORY_LIMIT", 5)
	v.Set("LOG_LEVEL", "DEBUG")
	v.Set("IS_PRODUCTION", true)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.EqualValues(t, "EUR", cfg.BaseCurrency)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsProduction)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("BASE_CURRENCY", "ringgit")
	v.Set("REFRESH_INTERVAL", "soon")
	v.Set("HTTP_TIMEOUT", "-1s")
	v.Set("HISTORY_LIMIT", -3)
	v.Set("LOG_LEVEL", "loud")

	cfg, err := load(v)
	require.NoError(t, err)

	assert.EqualValues(t, "MYR", cfg.BaseCurrency)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.Warnings, 5)
}

func TestLoad_EmptyPort(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "")

	_, err := load(v)
	assert.Error(t, err)
}
