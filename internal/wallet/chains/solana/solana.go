// Package solana implements the Solana provider.
// Solana does not use BIP32 here: the first 32 bytes of the BIP39 seed are the Ed25519 seed.
package solana

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util/qr"
	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

const (
	ID = "solana"

	explorerURL = "https://solscan.io/account/"

	minAddressLength = 32
	maxAddressLength = 44
)

var _ provider.AddressChecker = (*Provider)(nil)

// Provider derives Solana keypairs
type Provider struct {
	metadata provider.Metadata
}

// New returns the Solana provider
func New() *Provider {
	return &Provider{
		metadata: provider.Metadata{
			ID:          ID,
			Name:        "Solana",
			Symbol:      "SOL",
			Icon:        "◎",
			Version:     "1.0.0",
			Description: "Solana wallet generation plugin",
			Author:      "BitPaper Team",
		},
	}
}

// Metadata implements provider.Provider
func (p *Provider) Metadata() provider.Metadata {
	return p.metadata
}

// GenerateWallet builds the keypair from seed[:32]. Bytes 32-63 are ignored.
func (p *Provider) GenerateWallet(_ context.Context, seed []byte) (*provider.WalletInfo, error) {
	if err := provider.CheckSeed(ID, seed); err != nil {
		return nil, err
	}

	privateKey := solana.PrivateKey(ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize]))
	defer hdkey.Zero(privateKey)

	publicKey := privateKey.PublicKey()
	if publicKey.IsZero() {
		return nil, provider.DerivationFailure(ID, "derive public key", errors.New("zero public key"))
	}

	address := publicKey.String()

	return &provider.WalletInfo{
		Address:    address,
		PrivateKey: hex.EncodeToString(privateKey),
		PublicKey:  address,
		AdditionalData: map[string]any{
			provider.DataSecretKeyBase58: privateKey.String(),
		},
	}, nil
}

// ExplorerURL implements provider.Provider
func (p *Provider) ExplorerURL(address string) string {
	return explorerURL + address
}

// ValidateAddress only checks the base58 alphabet and length, not that the key is on the curve
func (p *Provider) ValidateAddress(address string) bool {
	return p.CheckAddress(address).Valid
}

// CheckAddress implements provider.AddressChecker
func (p *Provider) CheckAddress(address string) provider.ValidationResult {
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return provider.ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("address must be %d-%d characters, got %d", minAddressLength, maxAddressLength, len(address))},
		}
	}

	if _, err := base58.Decode(address); err != nil {
		return provider.ValidationResult{Valid: false, Errors: []string{"address is not base58: " + err.Error()}}
	}

	return provider.ValidationResult{Valid: true}
}

// FormatWalletInfo implements provider.Provider
func (p *Provider) FormatWalletInfo(_ context.Context, wallet *provider.WalletInfo, opts provider.DisplayOptions) ([]string, error) {
	lines := provider.Header(p.metadata)
	lines = append(lines, provider.SingleFormatNote(opts, "Solana uses a single address format (Ed25519 keypair).")...)

	lines = append(lines,
		"Address:     "+wallet.Address,
		"Explorer:    "+p.ExplorerURL(wallet.Address),
		"",
	)

	if opts.ShowQR {
		code, err := qr.Render(wallet.Address)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render QR code for %s", ID)
		}
		lines = append(lines, "QR Code:", code, "")
	}

	lines = append(lines, "Private Key: "+wallet.PrivateKey)
	if secret, ok := wallet.StringData(provider.DataSecretKeyBase58); ok {
		lines = append(lines, "Secret Key (base58, wallet import): "+secret)
	}
	lines = append(lines, "Public Key:  "+wallet.PublicKey, "")

	return lines, nil
}
