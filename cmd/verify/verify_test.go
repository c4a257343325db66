package verify_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpaper/paper-wallet/cmd/verify"
	"github.com/bitpaper/paper-wallet/internal/wallet/seed"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := verify.New()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestVerify(t *testing.T) {
	out, err := execute(t, seed.DryRunMnemonic)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Valid mnemonic phrase (24 words)")

	out, err = execute(t, "abandon", "abandon", "abandon", "abandon", "abandon", "abandon",
		"abandon", "abandon", "abandon", "abandon", "abandon", "about")
	require.NoError(t, err)
	assert.Contains(t, out, "(12 words)")
}

func TestVerifyInvalid(t *testing.T) {
	out, err := execute(t, "abandon abandon abandon")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)
	assert.Contains(t, out, "❌ Invalid mnemonic phrase")
}
