package config

import (
	"fmt"
	"go-currency-exchange/domain"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	BaseCurrency    domain.Currency
	DefaultTarget   domain.Currency
	RatesURL        string
	GeoURL          string
	RefreshInterval time.Duration
	HTTPTimeout     time.Duration
	HistoryLimit    int
	LogLevel        string
	IsProduction    bool

	// Warnings about values that were replaced by defaults. Logged by the caller.
	Warnings []string
}

var defaults = map[string]interface{}{
	"PORT":             "8080",
	"BASE_CURRENCY":    "MYR",
	"DEFAULT_TARGET":   "USD",
	"RATES_URL":        "https://api.frankfurter.app",
	"GEO_URL":          "http://ip-api.com",
	"REFRESH_INTERVAL": "1m",
	"HTTP_TIMEOUT":     "5s",
	"HISTORY_LIMIT":    50,
	"LOG_LEVEL":        "info",
	"IS_PRODUCTION":    false,
}

// Load loads configuration from environment variables, reading a .env file first if present.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	cfg := &Config{
		Port:         v.GetString("PORT"),
		RatesURL:     v.GetString("RATES_URL"),
		GeoURL:       v.GetString("GEO_URL"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
	}

	cfg.BaseCurrency = cfg.currency(v, "BASE_CURRENCY")
	cfg.DefaultTarget = cfg.currency(v, "DEFAULT_TARGET")
	cfg.RefreshInterval = cfg.duration(v, "REFRESH_INTERVAL")
	cfg.HTTPTimeout = cfg.duration(v, "HTTP_TIMEOUT")

	cfg.HistoryLimit = v.GetInt("HISTORY_LIMIT")
	if cfg.HistoryLimit <= 0 {
		cfg.warn("HISTORY_LIMIT", v.GetString("HISTORY_LIMIT"))
		cfg.HistoryLimit = defaults["HISTORY_LIMIT"].(int)
	}

	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.warn("LOG_LEVEL", cfg.LogLevel)
		cfg.LogLevel = defaults["LOG_LEVEL"].(string)
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("config: PORT must not be empty")
	}

	return cfg, nil
}

func (cfg *Config) warn(key, value string) {
	cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value for %v (%q), using default %v", key, value, defaults[key]))
}

func (cfg *Config) duration(v *viper.Viper, key string) time.Duration {
	s := v.GetString(key)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		cfg.warn(key, s)
		d, _ = time.ParseDuration(defaults[key].(string))
	}
	return d
}

func (cfg *Config) currency(v *viper.Viper, key string) domain.Currency {
	s := strings.ToUpper(strings.TrimSpace(v.GetString(key)))
	if len(s) != 3 {
		cfg.warn(key, s)
		s = defaults[key].(string)
	}
	return domain.Currency(s)
}
