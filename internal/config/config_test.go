package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpaper/paper-wallet/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 1, cfg.Generate.Count)
	assert.Empty(t, cfg.Generate.Currencies)
	assert.Equal(t, "all", cfg.Generate.Format)
	assert.True(t, cfg.Generate.ShowQR)
	assert.True(t, cfg.Generate.Warnings)
	assert.Equal(t, 262144, cfg.Keystore.ScryptN)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BITPAPER_LOGGER_LEVEL", "debug")
	t.Setenv("BITPAPER_GENERATE_COUNT", "3")
	t.Setenv("BITPAPER_GENERATE_CURRENCIES", "bitcoin, Ethereum")
	t.Setenv("BITPAPER_GENERATE_SHOW_QR", "false")
	t.Setenv("BITPAPER_PLUGINS_DIR", "/opt/plugins")

	cfg, err := config.Load(config.NewViper())
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.Logger.ZerologLevel())
	assert.Equal(t, 3, cfg.Generate.Count)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, cfg.Generate.Currencies)
	assert.False(t, cfg.Generate.ShowQR)
	assert.Equal(t, "/opt/plugins", cfg.Plugins.Dir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("BITPAPER_LOGGER_LEVEL", "verbose")
	_, err := config.Load(config.NewViper())
	require.Error(t, err)

	t.Setenv("BITPAPER_LOGGER_LEVEL", "info")
	t.Setenv("BITPAPER_GENERATE_COUNT", "0")
	_, err = config.Load(config.NewViper())
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitpaper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generate:
  count: 2
  currencies: [solana, chainlink]
  format: legacy
metrics:
  textfile: /tmp/bitpaper.prom
`), 0o600))

	v := config.NewViper()
	require.NoError(t, config.ReadFile(v, path))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Generate.Count)
	assert.Equal(t, []string{"solana", "chainlink"}, cfg.Generate.Currencies)
	assert.Equal(t, "legacy", cfg.Generate.Format)
	assert.Equal(t, "/tmp/bitpaper.prom", cfg.Metrics.Textfile)

	require.Error(t, config.ReadFile(config.NewViper(), filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"bitcoin", "solana"}, config.SplitList(" Bitcoin,,solana ,"))
	assert.Empty(t, config.SplitList(""))
}

func TestZerologLevelFallback(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, config.LoggerConfig{Level: "nonsense"}.ZerologLevel())
	assert.Equal(t, zerolog.WarnLevel, config.LoggerConfig{Level: "WARN"}.ZerologLevel())
}

func TestDefaultServiceConfigFromEnv(t *testing.T) {
	t.Setenv("BITPAPER_GENERATE_COUNT", "-1")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, 1, cfg.Generate.Count)
}
