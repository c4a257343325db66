package hdkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip32"

	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
)

func TestParsePath(t *testing.T) {
	indices, err := hdkey.ParsePath(hdkey.EthereumPath)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + 60,
		bip32.FirstHardenedChild,
		0,
		0,
	}, indices)

	indices, err = hdkey.ParsePath("M/44h/0h/1")
	require.NoError(t, err)
	assert.Equal(t, []uint32{bip32.FirstHardenedChild + 44, bip32.FirstHardenedChild, 1}, indices)

	indices, err = hdkey.ParsePath("m")
	require.NoError(t, err)
	assert.Empty(t, indices)

	for _, path := range []string{"", "44'/0'", "m44'", "m/44'/x", "m//0", "m/2147483648", "m/-1"} {
		_, err := hdkey.ParsePath(path)
		assert.Error(t, err, path)
	}
}

func TestDerivePrivateKey(t *testing.T) {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}

	key, err := hdkey.DerivePrivateKey(seed, hdkey.EthereumPath)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	again, err := hdkey.DerivePrivateKey(seed, hdkey.EthereumPath)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	other, err := hdkey.DerivePrivateKey(seed, hdkey.BitcoinPath)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	hdkey.Zero(key)
	assert.Equal(t, make([]byte, 32), key)
}
