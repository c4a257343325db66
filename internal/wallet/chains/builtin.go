// Package chains bundles the built-in providers.
package chains

import (
	"context"

	"github.com/bitpaper/paper-wallet/internal/wallet/chains/bitcoin"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains/ethereum"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains/solana"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
)

// BuiltIn returns new instances of the built-in providers in display order
func BuiltIn() []provider.Provider {
	return []provider.Provider{
		bitcoin.New(),
		ethereum.NewEthereum(),
		solana.New(),
		ethereum.NewChainlink(),
	}
}

// RegisterBuiltIn registers every built-in provider
func RegisterBuiltIn(ctx context.Context, r *registry.Registry) error {
	for _, p := range BuiltIn() {
		if err := r.Register(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
