// Package ethereum implements providers for Ethereum and EVM-compatible assets.
// All of them derive a secp256k1 key along a BIP44 path and use the Ethereum address space.
package ethereum

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util/qr"
	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

const (
	etherscanURL = "https://etherscan.io/address/{address}"
	sepoliaURL   = "https://sepolia.etherscan.io/address/{address}"

	addressPlaceholder = "{address}"
)

// Ensure the provider implements the optional capabilities at compile time.
var (
	_ provider.TestnetProvider   = (*Provider)(nil)
	_ provider.AfterGenerateHook = (*Provider)(nil)
	_ provider.AddressChecker    = (*Provider)(nil)
)

// Config describes one EVM asset
type Config struct {
	Metadata provider.Metadata

	// ExplorerURL and TestnetExplorerURL are templates containing {address}
	// or plain prefixes the address is appended to
	ExplorerURL        string
	TestnetExplorerURL string

	// FormatNote is shown when a specific address format was requested
	FormatNote string

	HidePublicKey bool
	Notes         []string
}

// Provider derives EVM wallets
type Provider struct {
	cfg Config
}

// New creates an EVM provider, the derivation path defaults to m/44'/60'/0'/0/0
func New(cfg Config) (*Provider, error) {
	if cfg.Metadata.ID == "" {
		return nil, errors.New("provider id is required")
	}
	if cfg.Metadata.DerivationPath == "" {
		cfg.Metadata.DerivationPath = hdkey.EthereumPath
	}
	if _, err := hdkey.ParsePath(cfg.Metadata.DerivationPath); err != nil {
		return nil, errors.Wrap(err, "invalid derivation path")
	}
	if cfg.ExplorerURL == "" {
		cfg.ExplorerURL = etherscanURL
	}
	if cfg.FormatNote == "" {
		cfg.FormatNote = cfg.Metadata.Name + " uses a single Ethereum address format."
	}

	return &Provider{cfg: cfg}, nil
}

// NewEthereum returns the Ethereum provider
func NewEthereum() *Provider {
	p, _ := New(Config{
		Metadata: provider.Metadata{
			ID:             "ethereum",
			Name:           "Ethereum",
			Symbol:         "ETH",
			Icon:           "♦",
			Version:        "1.0.0",
			Description:    "Ethereum wallet generation with ERC-20 token support",
			Author:         "BitPaper Team",
			DerivationPath: hdkey.EthereumPath,
		},
		ExplorerURL:        etherscanURL,
		TestnetExplorerURL: sepoliaURL,
		FormatNote:         "Ethereum uses a single address format (EIP-55 checksummed hex).",
	})

	return p
}

// NewChainlink returns the Chainlink provider. LINK is an ERC-20 token, so the
// wallet is the Ethereum wallet with different metadata.
func NewChainlink() *Provider {
	p, _ := New(Config{
		Metadata: provider.Metadata{
			ID:             "chainlink",
			Name:           "Chainlink",
			Symbol:         "LINK",
			Icon:           "🔗",
			Version:        "1.0.0",
			Description:    "Chainlink (LINK) wallet generation - ERC-20 token on Ethereum",
			Author:         "BitPaper Team",
			DerivationPath: hdkey.EthereumPath,
		},
		ExplorerURL:        etherscanURL,
		TestnetExplorerURL: sepoliaURL,
		FormatNote:         "Chainlink uses Ethereum addresses (ERC-20 token standard).",
		HidePublicKey:      true,
		Notes:              []string{"Note: Chainlink uses Ethereum addresses (ERC-20 token)"},
	})

	return p
}

// Metadata implements provider.Provider
func (p *Provider) Metadata() provider.Metadata {
	return p.cfg.Metadata
}

// GenerateWallet derives the key at the configured path
func (p *Provider) GenerateWallet(_ context.Context, seed []byte) (*provider.WalletInfo, error) {
	id := p.cfg.Metadata.ID
	if err := provider.CheckSeed(id, seed); err != nil {
		return nil, err
	}

	privateKey, err := hdkey.DerivePrivateKey(seed, p.cfg.Metadata.DerivationPath)
	if err != nil {
		return nil, provider.DerivationFailure(id, "derive private key", err)
	}

	// Clear private key after use
	defer hdkey.Zero(privateKey)

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, provider.DerivationFailure(id, "convert to ECDSA private key", err)
	}

	address := crypto.PubkeyToAddress(ecdsaPrivateKey.PublicKey)

	return &provider.WalletInfo{
		Address:    address.Hex(),
		PrivateKey: hexutil.Encode(crypto.FromECDSA(ecdsaPrivateKey)),
		PublicKey:  hexutil.Encode(crypto.CompressPubkey(&ecdsaPrivateKey.PublicKey)),
	}, nil
}

// ExplorerURL implements provider.Provider
func (p *Provider) ExplorerURL(address string) string {
	return expandURL(p.cfg.ExplorerURL, address)
}

// TestnetExplorerURL implements provider.TestnetProvider
func (p *Provider) TestnetExplorerURL(address string) string {
	if p.cfg.TestnetExplorerURL == "" {
		return expandURL(sepoliaURL, address)
	}

	return expandURL(p.cfg.TestnetExplorerURL, address)
}

// ValidateAddress accepts 20-byte hex addresses; mixed-case input must carry a valid EIP-55 checksum
func (p *Provider) ValidateAddress(address string) bool {
	return CheckAddress(address).Valid
}

// CheckAddress implements provider.AddressChecker
func (p *Provider) CheckAddress(address string) provider.ValidationResult {
	return CheckAddress(address)
}

// CheckAddress validates EVM address syntax and checksum
func CheckAddress(address string) provider.ValidationResult {
	if !common.IsHexAddress(address) {
		return provider.ValidationResult{Valid: false, Errors: []string{"address must be 40 hexadecimal characters with optional 0x prefix"}}
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		// single-case addresses carry no checksum
		return provider.ValidationResult{Valid: true}
	}

	if common.HexToAddress(address).Hex()[2:] != digits {
		return provider.ValidationResult{Valid: false, Errors: []string{"invalid EIP-55 checksum"}}
	}

	return provider.ValidationResult{Valid: true}
}

// OnAfterGenerate re-derives the address from the public key and checks it matches
func (p *Provider) OnAfterGenerate(_ context.Context, wallet *provider.WalletInfo, _ *provider.GenerationContext) error {
	id := p.cfg.Metadata.ID

	pub, err := hexutil.Decode(wallet.PublicKey)
	if err != nil {
		return provider.DerivationFailure(id, "decode public key", err)
	}

	publicKey, err := crypto.DecompressPubkey(pub)
	if err != nil {
		return provider.DerivationFailure(id, "decompress public key", err)
	}

	if crypto.PubkeyToAddress(*publicKey).Hex() != wallet.Address || !p.ValidateAddress(wallet.Address) {
		return provider.DerivationFailure(id, "self-check", errors.New("address does not match public key"))
	}

	return nil
}

// FormatWalletInfo implements provider.Provider
func (p *Provider) FormatWalletInfo(_ context.Context, wallet *provider.WalletInfo, opts provider.DisplayOptions) ([]string, error) {
	lines := provider.Header(p.cfg.Metadata)
	lines = append(lines, provider.SingleFormatNote(opts, p.cfg.FormatNote)...)

	lines = append(lines,
		"Address:     "+wallet.Address,
		"Explorer:    "+p.ExplorerURL(wallet.Address),
		"",
	)

	if opts.ShowQR {
		code, err := qr.Render(wallet.Address)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render QR code for %s", p.cfg.Metadata.ID)
		}
		lines = append(lines, "QR Code:", code, "")
	}

	lines = append(lines, "Private Key: "+wallet.PrivateKey)
	if !p.cfg.HidePublicKey {
		lines = append(lines, "Public Key:  "+wallet.PublicKey)
	}
	lines = append(lines, p.cfg.Notes...)
	lines = append(lines, "")

	return lines, nil
}

func expandURL(template string, address string) string {
	if strings.Contains(template, addressPlaceholder) {
		return strings.ReplaceAll(template, addressPlaceholder, address)
	}

	return template + address
}
