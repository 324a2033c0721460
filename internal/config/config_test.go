package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "camt.054.001.02", cfg.ActiveVersion)
	assert.Equal(t, "schemas/camt.054.001.02.xsd", cfg.Schemas["camt.054.001.02"])
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "EUR", cfg.ReportingCurrency)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
active_version: camt.054.001.08
timezone: UTC
servicer:
  bic: VIKNDEFFXXX
  name: Vikuna Bank
recipient:
  id: CORP-001
  name: Acme Corp
feature_flags:
  camt-cutover-INTRADAY_NOTIFICATION: true
`), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "camt.054.001.08", cfg.ActiveVersion)
	assert.Equal(t, "VIKNDEFFXXX", cfg.Servicer.BIC)
	assert.Equal(t, "CORP-001", cfg.Recipient.ID)
	assert.True(t, cfg.FeatureFlags["camt-cutover-INTRADAY_NOTIFICATION"])
	// Untouched keys keep their defaults.
	assert.Equal(t, "camt-reporter.db", cfg.DBPath)
	assert.Equal(t, "EUR", cfg.ReportingCurrency)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DB_PATH", "/tmp/camt.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "/tmp/camt.db", cfg.DBPath)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLocationRejectsUnknownZone(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}

	_, err := cfg.Location()

	assert.Error(t, err)
}
