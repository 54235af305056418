package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[pricing]
vat_rate_percent = 10

[clocking]
shift_cutoff = "13:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10.0, cfg.Pricing.VATRatePercent)
	assert.Equal(t, "13:00", cfg.Clocking.ShiftCutoff)
	// Значения по умолчанию сохраняются
	assert.Equal(t, "Europe/Paris", cfg.App.Timezone)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Security.AdminToken)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "bad vat", mutate: func(c *Config) { c.Pricing.VATRatePercent = 120 }},
		{name: "bad cutoff", mutate: func(c *Config) { c.Clocking.ShiftCutoff = "2pm" }},
		{name: "bad timezone", mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" }},
		{name: "engine without url", mutate: func(c *Config) { c.PricingEngine.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "cw", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=cw sslmode=disable", d.DSN())
}
