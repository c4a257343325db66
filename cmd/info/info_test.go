package info_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpaper/paper-wallet/cmd/info"
	"github.com/bitpaper/paper-wallet/internal/config"
	"github.com/bitpaper/paper-wallet/internal/test"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
	"github.com/bitpaper/paper-wallet/internal/wallet/render"
)

func TestInfoCommand(t *testing.T) {
	cmd := info.New(config.NewViper())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(t.Context()))

	assert.Contains(t, out.String(), "ID: bitcoin")
	assert.Contains(t, out.String(), "Derivation Path: m/44'/0'/0'/0/0")
	assert.Contains(t, out.String(), "Capabilities: multi-format, testnet, lifecycle-hooks, address-check")
	assert.Contains(t, out.String(), "ID: chainlink")
	assert.Contains(t, out.String(), "Total Plugins Loaded: 4")
}

func TestPrint(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(t.Context(), test.NewProvider("stub")))

	var out bytes.Buffer
	info.Print(&out, r, render.PlainStyler())

	assert.Contains(t, out.String(), "*  Stub stub (STB)")
	assert.Contains(t, out.String(), "Plugin Version: 0.0.1")
	assert.NotContains(t, out.String(), "Capabilities:")
	assert.NotContains(t, out.String(), "Derivation Path:")
	assert.Contains(t, out.String(), "Total Plugins Loaded: 1")
}
