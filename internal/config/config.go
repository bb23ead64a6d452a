package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/theater-billing/internal/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	PlaysPath          string
	CORSAllowedOrigins []string
	Rates              pricing.Rates
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		PlaysPath:          strings.TrimSpace(k.String("PLAYS_PATH")),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		Rates:              loadRates(k),
	}

	if cfg.PlaysPath == "" {
		return nil, errors.New("PLAYS_PATH is required")
	}

	return cfg, nil
}

// loadRates reads pricing-rate overrides, falling back to the house defaults.
// Rates is a plain value, so alternative rate sets never touch global state.
func loadRates(k *koanf.Koanf) pricing.Rates {
	rates := pricing.DefaultRates()
	rates.TragedyBaseCents = moneyOrDefault(k.String("PRICING_TRAGEDY_BASE_CENTS"), rates.TragedyBaseCents)
	rates.TragedyThreshold = intOrDefault(k.String("PRICING_TRAGEDY_THRESHOLD"), rates.TragedyThreshold)
	rates.TragedyOveragePerSeat = moneyOrDefault(k.String("PRICING_TRAGEDY_OVERAGE_PER_SEAT_CENTS"), rates.TragedyOveragePerSeat)
	rates.ComedyBaseCents = moneyOrDefault(k.String("PRICING_COMEDY_BASE_CENTS"), rates.ComedyBaseCents)
	rates.ComedyThreshold = intOrDefault(k.String("PRICING_COMEDY_THRESHOLD"), rates.ComedyThreshold)
	rates.ComedyOverageFlatCents = moneyOrDefault(k.String("PRICING_COMEDY_OVERAGE_FLAT_CENTS"), rates.ComedyOverageFlatCents)
	rates.ComedyOveragePerSeat = moneyOrDefault(k.String("PRICING_COMEDY_OVERAGE_PER_SEAT_CENTS"), rates.ComedyOveragePerSeat)
	rates.ComedySurchargePerSeat = moneyOrDefault(k.String("PRICING_COMEDY_SURCHARGE_PER_SEAT_CENTS"), rates.ComedySurchargePerSeat)
	rates.CreditThreshold = intOrDefault(k.String("CREDITS_BASE_THRESHOLD"), rates.CreditThreshold)
	rates.ComedyCreditDivisor = intOrDefault(k.String("CREDITS_COMEDY_BONUS_DIVISOR"), rates.ComedyCreditDivisor)
	return rates
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func moneyOrDefault(value string, fallback pricing.Money) pricing.Money {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func intOrDefault(value string, fallback int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return fallback
	}
	return v
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(envVars map[string]string) (*Config, error) {
	original := make(map[string]string, len(envVars))
	for key := range envVars {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, envVars[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
