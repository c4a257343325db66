package provider_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

const secret = "0xdeadbeefcafebabe"

func newWallet() *provider.WalletInfo {
	return &provider.WalletInfo{
		Address:    "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA",
		PrivateKey: secret,
		PublicKey:  "02abcdef",
		AdditionalData: map[string]any{
			provider.DataWIF: "Kxsecretwif",
			provider.DataFormats: map[string]string{
				"Legacy (P2PKH)": "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA",
			},
		},
	}
}

func TestWalletInfoRedaction(t *testing.T) {
	wallet := newWallet()

	for _, s := range []string{
		wallet.String(),
		fmt.Sprintf("%v", wallet),
		fmt.Sprintf("%+v", wallet),
		fmt.Sprintf("%#v", wallet),
		fmt.Sprint(wallet),
	} {
		assert.NotContains(t, s, secret)
		assert.NotContains(t, s, "Kxsecretwif")
		assert.Contains(t, s, wallet.Address)
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("wallet", wallet).Msg("generated")

	assert.NotContains(t, buf.String(), secret)
	assert.NotContains(t, buf.String(), "Kxsecretwif")
	assert.Contains(t, buf.String(), wallet.Address)
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestGenerationContextRedaction(t *testing.T) {
	genCtx := &provider.GenerationContext{
		Seed:      []byte{0xaa, 0xbb},
		Mnemonic:  "abandon abandon about",
		Timestamp: "2026-01-01T00:00:00.000Z",
	}

	for _, s := range []string{fmt.Sprintf("%v", genCtx), fmt.Sprintf("%#v", genCtx)} {
		assert.NotContains(t, s, "abandon")
		assert.Contains(t, s, "2026-01-01")
	}
}

func TestWalletInfoData(t *testing.T) {
	wallet := newWallet()

	wif, ok := wallet.StringData(provider.DataWIF)
	assert.True(t, ok)
	assert.Equal(t, "Kxsecretwif", wif)

	_, ok = wallet.StringData("missing")
	assert.False(t, ok)

	formats, ok := wallet.Formats()
	assert.True(t, ok)
	assert.Len(t, formats, 1)

	// AdditionalData decoded from JSON
	wallet.AdditionalData[provider.DataFormats] = map[string]any{"P2SH-SegWit": "3abc"}
	formats, ok = wallet.Formats()
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"P2SH-SegWit": "3abc"}, formats)

	_, ok = (&provider.WalletInfo{}).Formats()
	assert.False(t, ok)
}
