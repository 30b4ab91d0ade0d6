package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("LEDGER_KEY", "")
	t.Setenv("TEMPORAL_DISABLED", "")
	t.Setenv("CATALOG_SEED_DISABLED", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "pedidos", cfg.LedgerKey)
	assert.Empty(t, cfg.PostgresDSN)
	assert.False(t, cfg.TemporalDisabled)
	assert.True(t, cfg.SeedCatalog)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LEDGER_KEY", "pedidos-teste")
	t.Setenv("TEMPORAL_DISABLED", "true")
	t.Setenv("CATALOG_SEED_DISABLED", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "pedidos-teste", cfg.LedgerKey)
	assert.True(t, cfg.TemporalDisabled)
	assert.False(t, cfg.SeedCatalog)
}

func TestIsTruthy(t *testing.T) {
	for _, value := range []string{"1", "true", "YES", " True "} {
		assert.True(t, isTruthy(value), value)
	}
	for _, value := range []string{"", "0", "false", "no"} {
		assert.False(t, isTruthy(value), value)
	}
}
