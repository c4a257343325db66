// Package test provides stub providers for tests.
package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

// CallLog records lifecycle calls across providers in the order they happen
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *CallLog) add(call string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = append(l.calls, call)
}

// Calls returns a copy of the recorded calls
func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	calls := make([]string, len(l.calls))
	copy(calls, l.calls)
	return calls
}

// Provider is a deterministic stub. Its address is "<id>:" followed by the hex of the first seed byte.
type Provider struct {
	Meta        provider.Metadata
	GenerateErr error
	Log         *CallLog

	// Panic makes GenerateWallet panic with this value if non-nil
	Panic any
}

var _ provider.Provider = (*Provider)(nil)

// NewProvider returns a stub with the given id
func NewProvider(id string) *Provider {
	return &Provider{
		Meta: provider.Metadata{
			ID:      id,
			Name:    "Stub " + id,
			Symbol:  "STB",
			Icon:    "*",
			Version: "0.0.1",
		},
	}
}

func (p *Provider) Metadata() provider.Metadata {
	return p.Meta
}

func (p *Provider) GenerateWallet(_ context.Context, seed []byte) (*provider.WalletInfo, error) {
	p.Log.add("generate:" + p.Meta.ID)

	if p.Panic != nil {
		panic(p.Panic)
	}

	if p.GenerateErr != nil {
		return nil, p.GenerateErr
	}
	if len(seed) == 0 {
		return nil, provider.DerivationFailure(p.Meta.ID, "check seed", fmt.Errorf("empty seed"))
	}

	return &provider.WalletInfo{
		Address:    fmt.Sprintf("%s:%02x", p.Meta.ID, seed[0]),
		PrivateKey: fmt.Sprintf("secret-%s-%02x", p.Meta.ID, seed[0]),
		PublicKey:  "pub-" + p.Meta.ID,
	}, nil
}

func (p *Provider) ExplorerURL(address string) string {
	return "https://explorer.invalid/" + p.Meta.ID + "/" + address
}

func (p *Provider) ValidateAddress(address string) bool {
	return len(address) > len(p.Meta.ID)+1 && address[:len(p.Meta.ID)+1] == p.Meta.ID+":"
}

func (p *Provider) FormatWalletInfo(_ context.Context, wallet *provider.WalletInfo, _ provider.DisplayOptions) ([]string, error) {
	lines := provider.Header(p.Meta)
	return append(lines, "Address:     "+wallet.Address, "Private Key: "+wallet.PrivateKey, ""), nil
}

// HookedProvider adds lifecycle hooks to Provider
type HookedProvider struct {
	*Provider

	BeforeErr error
	AfterErr  error
}

var (
	_ provider.BeforeGenerateHook = (*HookedProvider)(nil)
	_ provider.AfterGenerateHook  = (*HookedProvider)(nil)
)

// NewHookedProvider returns a stub with hooks recording into log
func NewHookedProvider(id string, log *CallLog) *HookedProvider {
	p := NewProvider(id)
	p.Log = log

	return &HookedProvider{Provider: p}
}

func (p *HookedProvider) OnBeforeGenerate(_ context.Context, _ *provider.GenerationContext) error {
	p.Log.add("before:" + p.Meta.ID)
	return p.BeforeErr
}

func (p *HookedProvider) OnAfterGenerate(_ context.Context, _ *provider.WalletInfo, _ *provider.GenerationContext) error {
	p.Log.add("after:" + p.Meta.ID)
	return p.AfterErr
}

// Seed returns a 64-byte seed filled with b
func Seed(b byte) []byte {
	seed := make([]byte, provider.SeedLength)
	for i := range seed {
		seed[i] = b
	}

	return seed
}
