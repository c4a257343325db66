package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpaper/paper-wallet/internal/wallet/chains/bitcoin"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains/ethereum"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains/solana"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

func TestParseAddressFormat(t *testing.T) {
	for input, want := range map[string]provider.AddressFormat{
		"":              provider.FormatAll,
		"all":           provider.FormatAll,
		"Legacy":        provider.FormatLegacy,
		" p2sh-segwit ": provider.FormatP2SHSegwit,
		"NATIVE-SEGWIT": provider.FormatNativeSegwit,
	} {
		got, err := provider.ParseAddressFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := provider.ParseAddressFormat("taproot")
	assert.Error(t, err)
}

func TestSingleFormatNote(t *testing.T) {
	assert.Empty(t, provider.SingleFormatNote(provider.DefaultDisplayOptions(), "single"))

	lines := provider.SingleFormatNote(provider.DisplayOptions{Format: provider.FormatLegacy}, "single")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Note: single", lines[0])
}

func TestHeader(t *testing.T) {
	lines := provider.Header(provider.Metadata{Name: "Bitcoin", Symbol: "BTC", Icon: "₿"})
	require.Len(t, lines, 2)
	assert.Equal(t, "₿  BITCOIN (BTC)", lines[0])
	assert.Len(t, lines[1], provider.LineWidth)
}

func TestCheckSeed(t *testing.T) {
	assert.NoError(t, provider.CheckSeed("x", make([]byte, provider.SeedLength)))
	assert.ErrorIs(t, provider.CheckSeed("x", make([]byte, 32)), provider.ErrDerivationFailure)
	assert.ErrorIs(t, provider.CheckSeed("x", nil), provider.ErrDerivationFailure)
}

func TestCapabilitiesOf(t *testing.T) {
	btc := provider.CapabilitiesOf(bitcoin.New())
	assert.True(t, btc.MultiFormat)
	assert.True(t, btc.Testnet)
	assert.True(t, btc.AfterGenerate)
	assert.False(t, btc.BeforeGenerate)
	assert.Equal(t, []string{"multi-format", "testnet", "lifecycle-hooks", "address-check"}, btc.Names())

	eth := provider.CapabilitiesOf(ethereum.NewEthereum())
	assert.False(t, eth.MultiFormat)
	assert.True(t, eth.Testnet)

	sol := provider.CapabilitiesOf(solana.New())
	assert.Equal(t, []string{"address-check"}, sol.Names())
}
