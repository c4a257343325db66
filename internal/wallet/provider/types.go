package provider

import (
	"context"
)

// Provider is the contract every blockchain plugin implements.
// Implementations are stateless between calls and safe for concurrent use.
type Provider interface {
	// Metadata returns the plugin metadata; Metadata().ID is the registry key
	Metadata() Metadata

	// GenerateWallet derives a wallet from a 64-byte BIP39 seed.
	// The result is deterministic for a fixed seed. The seed must not be retained.
	GenerateWallet(ctx context.Context, seed []byte) (*WalletInfo, error)

	// ExplorerURL returns the block explorer URL for an address (no I/O)
	ExplorerURL(address string) string

	// ValidateAddress checks address syntax and checksum, returns false on malformed input
	ValidateAddress(address string) bool

	// FormatWalletInfo renders display lines for a wallet without mutating it
	FormatWalletInfo(ctx context.Context, wallet *WalletInfo, opts DisplayOptions) ([]string, error)
}

// TestnetProvider is implemented by providers that know a testnet explorer
type TestnetProvider interface {
	Provider

	TestnetExplorerURL(address string) string
}

// BeforeGenerateHook is invoked by the factory before GenerateWallet
type BeforeGenerateHook interface {
	OnBeforeGenerate(ctx context.Context, genCtx *GenerationContext) error
}

// AfterGenerateHook is invoked by the factory with the wallet just produced.
// Hooks may perform side effects but must not modify the wallet.
type AfterGenerateHook interface {
	OnAfterGenerate(ctx context.Context, wallet *WalletInfo, genCtx *GenerationContext) error
}

// MultiFormatProvider is implemented when one key supports several address encodings
type MultiFormatProvider interface {
	Provider

	// AlternativeFormats returns label -> address for every encoding of the wallet's key
	AlternativeFormats(wallet *WalletInfo) (map[string]string, error)
}

// AddressChecker is implemented by providers that can explain why an address is invalid
type AddressChecker interface {
	CheckAddress(address string) ValidationResult
}

// Metadata describes a provider
type Metadata struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Icon           string `json:"icon"`
	Version        string `json:"version"`
	Description    string `json:"description,omitempty"`
	Author         string `json:"author,omitempty"`
	DerivationPath string `json:"derivationPath,omitempty"`
}

// ValidationResult is the detailed result of an address check
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// GenerationContext is shared by all lifecycle hooks of one generation request.
// Providers must treat it as read-only.
type GenerationContext struct {
	Seed      []byte
	Mnemonic  string
	IsDryRun  bool
	Timestamp string
}

// String keeps the seed and mnemonic out of formatted output
func (g *GenerationContext) String() string {
	if g == nil {
		return "<nil>"
	}

	return "GenerationContext{seed:[REDACTED] mnemonic:[REDACTED] dryRun:" + boolString(g.IsDryRun) + " timestamp:" + g.Timestamp + "}"
}

// GoString is used by %#v
func (g *GenerationContext) GoString() string {
	return g.String()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
