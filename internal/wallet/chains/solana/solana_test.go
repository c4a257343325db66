package solana_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpaper/paper-wallet/internal/test"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains/solana"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

func TestGenerateWallet(t *testing.T) {
	p := solana.New()

	wallet, err := p.GenerateWallet(t.Context(), test.Seed(7))
	require.NoError(t, err)

	assert.Equal(t, wallet.Address, wallet.PublicKey)
	assert.True(t, p.ValidateAddress(wallet.Address))
	assert.Len(t, wallet.PrivateKey, 128)

	privateKey, err := hex.DecodeString(wallet.PrivateKey)
	require.NoError(t, err)

	secret, ok := wallet.StringData(provider.DataSecretKeyBase58)
	require.True(t, ok)

	decoded, err := base58.Decode(secret)
	require.NoError(t, err)
	assert.Len(t, decoded, 64)
	assert.Equal(t, privateKey, decoded)

	// the last 32 bytes of the secret key are the public key
	publicKey, err := base58.Decode(wallet.Address)
	require.NoError(t, err)
	assert.Equal(t, decoded[32:], publicKey)
}

func TestGenerateWalletUsesFirstHalfOfSeed(t *testing.T) {
	p := solana.New()

	seed := test.Seed(7)
	first, err := p.GenerateWallet(t.Context(), seed)
	require.NoError(t, err)

	tail := append([]byte{}, seed...)
	for i := 32; i < len(tail); i++ {
		tail[i] ^= 0xff
	}
	second, err := p.GenerateWallet(t.Context(), tail)
	require.NoError(t, err)
	assert.Equal(t, first.Address, second.Address)

	head := append([]byte{}, seed...)
	head[0] ^= 0xff
	third, err := p.GenerateWallet(t.Context(), head)
	require.NoError(t, err)
	assert.NotEqual(t, first.Address, third.Address)
}

func TestGenerateWalletRejectsShortSeed(t *testing.T) {
	_, err := solana.New().GenerateWallet(t.Context(), make([]byte, 32))
	assert.ErrorIs(t, err, provider.ErrDerivationFailure)
}

func TestValidateAddress(t *testing.T) {
	p := solana.New()

	assert.True(t, p.ValidateAddress("11111111111111111111111111111111"))

	invalid := []string{
		"",
		"short",
		strings.Repeat("1", 45),
		"0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl",
	}
	for _, address := range invalid {
		result := p.CheckAddress(address)
		assert.False(t, result.Valid, address)
		assert.NotEmpty(t, result.Errors, address)
	}
}

func TestFormatWalletInfo(t *testing.T) {
	p := solana.New()

	wallet, err := p.GenerateWallet(t.Context(), test.Seed(1))
	require.NoError(t, err)

	lines, err := p.FormatWalletInfo(t.Context(), wallet, provider.DisplayOptions{Format: provider.FormatLegacy, ShowQR: true})
	require.NoError(t, err)
	text := strings.Join(lines, "\n")

	assert.Equal(t, "◎  SOLANA (SOL)", lines[0])
	assert.Contains(t, text, "Note: Solana uses a single address format (Ed25519 keypair).")
	assert.Contains(t, text, "Address:     "+wallet.Address)
	assert.Contains(t, text, "Explorer:    https://solscan.io/account/"+wallet.Address)
	assert.Contains(t, text, "QR Code:")
	assert.Contains(t, text, "Private Key: "+wallet.PrivateKey)
	assert.Contains(t, text, "Secret Key (base58, wallet import): ")

	lines, err = p.FormatWalletInfo(t.Context(), wallet, provider.DisplayOptions{Format: provider.FormatAll})
	require.NoError(t, err)
	text = strings.Join(lines, "\n")

	assert.NotContains(t, text, "Note:")
	assert.NotContains(t, text, "QR Code:")
}
