package plugin_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"github.com/bitpaper/paper-wallet/internal/test"
	"github.com/bitpaper/paper-wallet/internal/wallet/plugin"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testAddress  = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
)

const polygonManifest = `{
	"id": "polygon",
	"name": "Polygon",
	"symbol": "POL",
	"icon": "⬡",
	"version": "1.0.0",
	"description": "Polygon PoS wallet generation",
	"author": "Community",
	"derivationPath": "m/44'/60'/0'/0/0",
	"explorerUrls": {
		"mainnet": "https://polygonscan.com/address/{address}",
		"testnet": "https://amoy.polygonscan.com/address/"
	},
	"config": {
		"driver": "evm",
		"formatNote": "Polygon uses Ethereum addresses.",
		"hidePublicKey": true
	}
}`

const incompleteManifest = `{
	"id": "incomplete",
	"name": "Incomplete",
	"symbol": "INC",
	"icon": "?",
	"version": "1.0.0",
	"author": "Community",
	"explorerUrls": {"mainnet": "https://example.com/"},
	"config": {"driver": "evm"}
}`

const mysteryManifest = `{
	"id": "mystery",
	"name": "Mystery",
	"symbol": "MYS",
	"icon": "?",
	"version": "1.0.0",
	"description": "Unknown driver",
	"author": "Community",
	"explorerUrls": {"mainnet": "https://example.com/"},
	"config": {"driver": "wasm"}
}`

const badPathManifest = `{
	"id": "badpath",
	"name": "Bad Path",
	"symbol": "BAD",
	"icon": "?",
	"version": "1.0.0",
	"description": "Invalid derivation path",
	"author": "Community",
	"derivationPath": "44/60/0",
	"explorerUrls": {"mainnet": "https://example.com/"},
	"config": {"driver": "evm"}
}`

const configlessManifest = `{
	"id": "gnosis",
	"name": "Gnosis",
	"symbol": "XDAI",
	"icon": "G",
	"version": "1.0.0",
	"description": "Gnosis Chain wallet generation",
	"author": "Community",
	"explorerUrls": {"mainnet": "https://gnosisscan.io/address/"}
}`

func pluginFS() fstest.MapFS {
	return fstest.MapFS{
		"polygon/plugin.json":    {Data: []byte(polygonManifest)},
		"_template/plugin.json":  {Data: []byte(polygonManifest)},
		".hidden/plugin.json":    {Data: []byte(polygonManifest)},
		"empty/README.md":        {Data: []byte("nothing here")},
		"notes.txt":              {Data: []byte("not a plugin")},
		"incomplete/plugin.json": {Data: []byte(incompleteManifest)},
		"mystery/plugin.json":    {Data: []byte(mysteryManifest)},
		"badpath/plugin.json":    {Data: []byte(badPathManifest)},
		"garbage/plugin.json":    {Data: []byte(`{not json`)},
		"gnosis/plugin.json":     {Data: []byte(configlessManifest)},
	}
}

func TestListCandidates(t *testing.T) {
	names, err := plugin.NewDirSource(pluginFS()).ListCandidates(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"badpath", "garbage", "gnosis", "incomplete", "mystery", "polygon"}, names)
}

func TestLoadManifest(t *testing.T) {
	src := plugin.NewDirSource(pluginFS())

	candidate, err := src.Load(t.Context(), "polygon")
	require.NoError(t, err)

	assert.Equal(t, "polygon", candidate.Name)
	assert.Equal(t, "polygon", candidate.ManifestID)
	require.NoError(t, registry.ValidateCandidate(candidate))

	meta := candidate.Provider.Metadata()
	assert.Equal(t, "Polygon", meta.Name)
	assert.Equal(t, "POL", meta.Symbol)

	seed, err := bip39.NewSeedWithErrorChecking(testMnemonic, "")
	require.NoError(t, err)

	wallet, err := candidate.Provider.GenerateWallet(t.Context(), seed)
	require.NoError(t, err)
	assert.Equal(t, testAddress, wallet.Address)

	assert.Equal(t, "https://polygonscan.com/address/"+testAddress, candidate.Provider.ExplorerURL(testAddress))

	testnet, ok := candidate.Provider.(provider.TestnetProvider)
	require.True(t, ok)
	assert.Equal(t, "https://amoy.polygonscan.com/address/"+testAddress, testnet.TestnetExplorerURL(testAddress))

	lines, err := candidate.Provider.FormatWalletInfo(t.Context(), wallet, provider.DisplayOptions{Format: provider.FormatLegacy})
	require.NoError(t, err)
	assert.Contains(t, lines, "Note: Polygon uses Ethereum addresses.")
	for _, line := range lines {
		assert.NotContains(t, line, "Public Key")
	}
}

func TestLoadManifestWithoutConfigDefaultsToEVM(t *testing.T) {
	candidate, err := plugin.NewDirSource(pluginFS()).Load(t.Context(), "gnosis")
	require.NoError(t, err)
	require.NoError(t, registry.ValidateCandidate(candidate))

	seed, err := bip39.NewSeedWithErrorChecking(testMnemonic, "")
	require.NoError(t, err)

	wallet, err := candidate.Provider.GenerateWallet(t.Context(), seed)
	require.NoError(t, err)
	assert.Equal(t, testAddress, wallet.Address)
	assert.Equal(t, "https://gnosisscan.io/address/"+testAddress, candidate.Provider.ExplorerURL(testAddress))
}

func TestLoadRejectsInvalidManifests(t *testing.T) {
	src := plugin.NewDirSource(pluginFS())

	tests := map[string]string{
		"incomplete": "Description",
		"mystery":    "unknown driver wasm",
		"badpath":    "bip44path",
		"garbage":    "failed to decode manifest",
		"missing":    "failed to read manifest",
	}

	for name, reason := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := src.Load(t.Context(), name)
			require.ErrorIs(t, err, provider.ErrInvalidPlugin)
			assert.Contains(t, err.Error(), reason)
		})
	}
}

func TestRegisterDriver(t *testing.T) {
	src := plugin.NewDirSource(pluginFS())
	src.RegisterDriver("wasm", func(m *plugin.Manifest) (provider.Provider, error) {
		p := test.NewProvider(m.ID)
		p.Meta.Name = m.Name
		return p, nil
	})

	candidate, err := src.Load(t.Context(), "mystery")
	require.NoError(t, err)
	assert.Equal(t, "Mystery", candidate.Provider.Metadata().Name)
}

func TestRegistryLoadFromDirectory(t *testing.T) {
	r := registry.New()

	report, err := r.Load(t.Context(), plugin.NewDirSource(pluginFS()))
	require.NoError(t, err)

	assert.Equal(t, []string{"gnosis", "polygon"}, report.Loaded)
	assert.Len(t, report.Rejected, 4)
	assert.Equal(t, []string{"gnosis", "polygon"}, r.IDs())
}
