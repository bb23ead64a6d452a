package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-billing/internal/config"
	"github.com/noah-isme/theater-billing/internal/pricing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PLAYS_PATH": "testdata/plays.json",
		"PORT":       "",
		"APP_ENV":    "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "testdata/plays.json", cfg.PlaysPath)
	require.Equal(t, pricing.DefaultRates(), cfg.Rates)
}

func TestLoadRequiresPlaysPath(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"PLAYS_PATH": "",
	})
	require.Error(t, err)
}

func TestLoadRateOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PLAYS_PATH":                   "plays.json",
		"PRICING_TRAGEDY_BASE_CENTS":   "20000",
		"PRICING_COMEDY_THRESHOLD":     "25",
		"CREDITS_COMEDY_BONUS_DIVISOR": "10",
		"PRICING_COMEDY_BASE_CENTS":    "not-a-number",
	})
	require.NoError(t, err)
	require.Equal(t, pricing.Money(20000), cfg.Rates.TragedyBaseCents)
	require.Equal(t, 25, cfg.Rates.ComedyThreshold)
	require.Equal(t, 10, cfg.Rates.ComedyCreditDivisor)
	// Unparseable overrides fall back to the default.
	require.Equal(t, pricing.DefaultRates().ComedyBaseCents, cfg.Rates.ComedyBaseCents)
}

func TestHTTPAddrPassthrough(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PLAYS_PATH": "plays.json",
		"PORT":       ":9090",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
}
