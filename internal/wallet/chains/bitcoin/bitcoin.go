// Package bitcoin implements the Bitcoin provider.
// One BIP32 key is derived and encoded as Legacy, P2SH-SegWit and Native SegWit addresses.
package bitcoin

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/util/qr"
	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

const (
	ID = "bitcoin"

	explorerURL        = "https://blockchair.com/bitcoin/address/"
	testnetExplorerURL = "https://blockchair.com/bitcoin/testnet/address/"
)

// Labels of the address formats in WalletInfo.AdditionalData["formats"]
const (
	LabelLegacy       = "Legacy (P2PKH)"
	LabelP2SHSegwit   = "P2SH-SegWit"
	LabelNativeSegwit = "Native SegWit (P2WPKH)"
)

// encodings in display order
var encodings = []struct {
	format provider.AddressFormat
	label  string
	short  string
	hint   string
}{
	{provider.FormatLegacy, LabelLegacy, "Legacy", `Starts with "1", widely supported, higher fees`},
	{provider.FormatP2SHSegwit, LabelP2SHSegwit, "P2SH-SegWit", `Starts with "3", compatible SegWit, medium fees`},
	{provider.FormatNativeSegwit, LabelNativeSegwit, "Native SegWit", `Starts with "bc1", lowest fees, best efficiency`},
}

// Ensure the provider implements the optional capabilities at compile time.
var (
	_ provider.MultiFormatProvider = (*Provider)(nil)
	_ provider.TestnetProvider     = (*Provider)(nil)
	_ provider.AfterGenerateHook   = (*Provider)(nil)
	_ provider.AddressChecker      = (*Provider)(nil)
)

// Provider derives Bitcoin mainnet wallets
type Provider struct {
	metadata provider.Metadata
	params   *chaincfg.Params
}

// New returns the Bitcoin provider
func New() *Provider {
	return &Provider{
		metadata: provider.Metadata{
			ID:             ID,
			Name:           "Bitcoin",
			Symbol:         "BTC",
			Icon:           "₿",
			Version:        "1.1.0",
			Description:    "Bitcoin wallet generation with multiple address formats (Legacy, P2SH-SegWit, Native SegWit)",
			Author:         "BitPaper Team",
			DerivationPath: hdkey.BitcoinPath,
		},
		params: &chaincfg.MainNetParams,
	}
}

// Metadata implements provider.Provider
func (p *Provider) Metadata() provider.Metadata {
	return p.metadata
}

// GenerateWallet derives the key at m/44'/0'/0'/0/0 and all three address encodings.
// The native SegWit address is the primary address.
func (p *Provider) GenerateWallet(_ context.Context, seed []byte) (*provider.WalletInfo, error) {
	if err := provider.CheckSeed(ID, seed); err != nil {
		return nil, err
	}

	key, err := p.deriveKey(seed)
	if err != nil {
		return nil, provider.DerivationFailure(ID, "derive key", err)
	}

	privateKey, err := key.ECPrivKey()
	if err != nil {
		return nil, provider.DerivationFailure(ID, "get EC private key", err)
	}

	publicKey := privateKey.PubKey().SerializeCompressed()

	formats, err := p.encodeAll(publicKey)
	if err != nil {
		return nil, err
	}

	wif, err := btcutil.NewWIF(privateKey, p.params, true)
	if err != nil {
		return nil, provider.DerivationFailure(ID, "encode WIF", err)
	}

	privateKeyBytes := privateKey.Serialize()
	defer hdkey.Zero(privateKeyBytes)

	return &provider.WalletInfo{
		Address:    formats[LabelNativeSegwit],
		PrivateKey: hex.EncodeToString(privateKeyBytes),
		PublicKey:  hex.EncodeToString(publicKey),
		AdditionalData: map[string]any{
			provider.DataWIF:     wif.String(),
			provider.DataFormats: formats,
		},
	}, nil
}

func (p *Provider) deriveKey(seed []byte) (*hdkeychain.ExtendedKey, error) {
	indices, err := hdkey.ParsePath(p.metadata.DerivationPath)
	if err != nil {
		return nil, errors.Wrap(err, "invalid derivation path")
	}

	key, err := hdkeychain.NewMaster(seed, p.params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	for _, index := range indices {
		key, err = key.Derive(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return key, nil
}

// AlternativeFormats implements provider.MultiFormatProvider
func (p *Provider) AlternativeFormats(wallet *provider.WalletInfo) (map[string]string, error) {
	raw, err := hex.DecodeString(wallet.PublicKey)
	if err != nil {
		return nil, provider.DerivationFailure(ID, "decode public key", err)
	}

	publicKey, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, provider.DerivationFailure(ID, "parse public key", err)
	}

	return p.encodeAll(publicKey.SerializeCompressed())
}

func (p *Provider) encodeAll(publicKey []byte) (map[string]string, error) {
	formats := make(map[string]string, len(encodings))
	for _, enc := range encodings {
		address, err := p.encode(publicKey, enc.format)
		if err != nil {
			return nil, provider.AddressEncodingFailure(ID, string(enc.format), err)
		}
		if address == "" {
			return nil, provider.AddressEncodingFailure(ID, string(enc.format), errors.New("empty address"))
		}
		formats[enc.label] = address
	}

	return formats, nil
}

// encode builds the address of one payment script template for a compressed public key
func (p *Provider) encode(publicKey []byte, format provider.AddressFormat) (string, error) {
	pubKeyHash := btcutil.Hash160(publicKey)

	switch format {
	case provider.FormatLegacy:
		addr, err := btcutil.NewAddressPubKeyHash(pubKeyHash, p.params)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	case provider.FormatP2SHSegwit:
		witness, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, p.params)
		if err != nil {
			return "", err
		}
		redeemScript, err := txscript.PayToAddrScript(witness)
		if err != nil {
			return "", errors.Wrap(err, "failed to build redeem script")
		}
		addr, err := btcutil.NewAddressScriptHash(redeemScript, p.params)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	case provider.FormatNativeSegwit:
		addr, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, p.params)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	default:
		return "", errors.Errorf("unsupported address format %q", format)
	}
}

// ExplorerURL implements provider.Provider
func (p *Provider) ExplorerURL(address string) string {
	return explorerURL + address
}

// TestnetExplorerURL implements provider.TestnetProvider
func (p *Provider) TestnetExplorerURL(address string) string {
	return testnetExplorerURL + address
}

// ValidateAddress accepts any mainnet address that decodes to an output script
func (p *Provider) ValidateAddress(address string) bool {
	return p.CheckAddress(address).Valid
}

// CheckAddress implements provider.AddressChecker
func (p *Provider) CheckAddress(address string) provider.ValidationResult {
	addr, err := btcutil.DecodeAddress(address, p.params)
	if err != nil {
		return provider.ValidationResult{Valid: false, Errors: []string{err.Error()}}
	}

	// DecodeAddress also accepts raw hex public keys
	if _, ok := addr.(*btcutil.AddressPubKey); ok {
		return provider.ValidationResult{Valid: false, Errors: []string{"public keys are not addresses"}}
	}

	if !addr.IsForNet(p.params) {
		return provider.ValidationResult{Valid: false, Errors: []string{"address is not for " + p.params.Name}}
	}

	return provider.ValidationResult{Valid: true}
}

// OnAfterGenerate checks every format validates and all formats are pairwise distinct
func (p *Provider) OnAfterGenerate(_ context.Context, wallet *provider.WalletInfo, _ *provider.GenerationContext) error {
	formats, ok := wallet.Formats()
	if !ok || len(formats) != len(encodings) {
		return provider.AddressEncodingFailure(ID, "all", errors.New("missing address formats"))
	}

	seen := make(map[string]bool, len(formats))
	for label, address := range formats {
		if !p.ValidateAddress(address) {
			return provider.AddressEncodingFailure(ID, label, errors.New("self-check failed"))
		}
		if seen[address] {
			return provider.AddressEncodingFailure(ID, label, errors.New("duplicate address"))
		}
		seen[address] = true
	}

	return nil
}

// FormatWalletInfo renders the formats selected by opts.Format.
// Explorer link and QR code refer to the selected format, native SegWit when all are shown.
func (p *Provider) FormatWalletInfo(ctx context.Context, wallet *provider.WalletInfo, opts provider.DisplayOptions) ([]string, error) {
	format := opts.Format
	if format == "" {
		format = provider.FormatAll
	}

	if _, err := provider.ParseAddressFormat(string(format)); err != nil {
		util.LogFromContext(ctx).Warn().
			Str("provider", ID).
			Str("format", string(format)).
			Msg("Unsupported Bitcoin address format, showing all formats instead")
		format = provider.FormatAll
	}

	lines := provider.Header(p.metadata)

	primary := wallet.Address
	primaryLabel := ""

	formats, ok := wallet.Formats()
	if !ok {
		var err error
		if formats, err = p.AlternativeFormats(wallet); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Str("provider", ID).Msg("Failed to derive Bitcoin address formats")
		} else {
			ok = true
		}
	}

	if ok {
		if format == provider.FormatAll {
			lines = append(lines, "ADDRESS FORMATS:", "")
		} else {
			lines = append(lines, "ADDRESS:", "")
		}

		for _, enc := range encodings {
			address := formats[enc.label]
			if address == "" || (format != provider.FormatAll && format != enc.format) {
				continue
			}

			line := fmt.Sprintf("  %-26s%s", enc.label+":", address)
			if enc.format == provider.FormatNativeSegwit {
				line += " ⭐ Recommended"
			}
			lines = append(lines, line, "    • "+enc.hint, "")
		}

		if format == provider.FormatAll {
			lines = append(lines,
				"💡 All addresses above are derived from the same private key.",
				"   Choose the format that works best for your wallet/exchange.",
			)
		} else {
			lines = append(lines,
				"💡 All address formats are available from the same private key.",
				"   Use --format=all to see all available formats.",
			)
		}

		primary, primaryLabel = selectPrimary(formats, format, wallet.Address)
	} else {
		lines = append(lines, "Address:     "+wallet.Address)
	}

	lines = append(lines, "", "Explorer:    "+p.ExplorerURL(primary), "")

	if opts.ShowQR {
		code, err := qr.Render(primary)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render QR code for %s", ID)
		}

		title := "QR Code:"
		if primaryLabel != "" {
			title = "QR Code (" + primaryLabel + "):"
		}
		lines = append(lines, title, code, "")
	}

	lines = append(lines, "PRIVATE KEYS:", "  Private Key (hex): "+wallet.PrivateKey)
	if wif, ok := wallet.StringData(provider.DataWIF); ok {
		lines = append(lines, "  WIF Format:        "+wif)
	}

	lines = append(lines, "", "Public Key:  "+wallet.PublicKey, "")

	return lines, nil
}

func selectPrimary(formats map[string]string, format provider.AddressFormat, fallback string) (string, string) {
	if format == provider.FormatAll {
		format = provider.FormatNativeSegwit
	}

	for _, enc := range encodings {
		if enc.format != format {
			continue
		}
		if address := formats[enc.label]; address != "" {
			return address, enc.short
		}
		return fallback, enc.short
	}

	return fallback, ""
}
