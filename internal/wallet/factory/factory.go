// Package factory generates wallet sets across providers sharing one seed.
package factory

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
)

// TimestampLayout is the format of WalletSet.Timestamp
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Factory resolves providers through a registry and generates wallets
type Factory struct {
	registry    *registry.Registry
	parallelism int
	metrics     *Metrics
	now         func() time.Time
}

// Option configures a Factory
type Option func(*Factory)

// WithParallelism runs up to n providers concurrently; n <= 1 is sequential
func WithParallelism(n int) Option {
	return func(f *Factory) {
		f.parallelism = n
	}
}

// WithMetrics records generation outcomes
func WithMetrics(m *Metrics) Option {
	return func(f *Factory) {
		f.metrics = m
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		f.now = now
	}
}

// New creates a factory over r
func New(r *registry.Registry, opts ...Option) *Factory {
	f := &Factory{
		registry:    r,
		parallelism: 1,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

type result struct {
	wallet   *provider.WalletInfo
	provider provider.Provider
	err      error
}

// Generate derives one wallet per selected id. Unknown ids and failing providers
// are logged, recorded in WalletSet.Failures and skipped. Only an empty seed or an
// empty selection is returned as an error.
func (f *Factory) Generate(ctx context.Context, seed []byte, mnemonic string, ids []string, isDryRun bool) (*WalletSet, error) {
	if len(seed) == 0 {
		return nil, provider.InvalidRequest("seed is empty")
	}
	if len(ids) == 0 {
		return nil, provider.InvalidRequest("no currencies selected")
	}

	ctx = util.ContextWithComponent(ctx, "wallet_factory")
	log := util.LogFromContext(ctx)

	if f.metrics != nil {
		f.metrics.Requests.Inc()
	}

	timestamp := f.now().UTC().Format(TimestampLayout)
	genCtx := &provider.GenerationContext{
		Seed:      seed,
		Mnemonic:  mnemonic,
		IsDryRun:  isDryRun,
		Timestamp: timestamp,
	}

	unique := dedupe(ids)
	results := make([]result, len(unique))

	if f.parallelism > 1 && len(unique) > 1 {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(f.parallelism)

		for i, id := range unique {
			g.Go(func() error {
				results[i] = f.generateOne(gCtx, id, seed, genCtx)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, errors.Wrap(err, "failed to generate wallets")
		}
	} else {
		for i, id := range unique {
			results[i] = f.generateOne(ctx, id, seed, genCtx)
		}
	}

	set := newWalletSet(mnemonic, timestamp, ids)
	for i, id := range unique {
		r := results[i]
		if r.err != nil {
			set.Failures = append(set.Failures, Failure{ID: id, Err: r.err})
			continue
		}
		set.insert(id, r.wallet, r.provider)
	}

	log.Debug().
		Int("requested", len(ids)).
		Int("generated", set.Len()).
		Int("failed", len(set.Failures)).
		Bool("dry_run", isDryRun).
		Msg("Generated wallet set")

	return set, nil
}

// generateOne runs before hook, derivation and after hook for one id
func (f *Factory) generateOne(ctx context.Context, id string, seed []byte, genCtx *provider.GenerationContext) result {
	log := zerolog.Ctx(ctx).With().Str("provider", id).Logger()
	start := time.Now()

	p, ok := f.registry.Get(id)
	if !ok {
		err := provider.UnknownProvider(id)
		log.Warn().Err(err).Msg("Provider not found, skipping")
		f.metrics.observe(id, OutcomeUnknown, 0)
		return result{err: err}
	}

	wallet, err := f.run(ctx, id, p, seed, genCtx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate wallet, skipping")
		f.metrics.observe(id, OutcomeFailure, time.Since(start).Seconds())
		return result{err: err}
	}

	log.Debug().Object("wallet", wallet).Msg("Generated wallet")
	f.metrics.observe(id, OutcomeSuccess, time.Since(start).Seconds())

	return result{wallet: wallet, provider: p}
}

func (f *Factory) run(ctx context.Context, id string, p provider.Provider, seed []byte, genCtx *provider.GenerationContext) (*provider.WalletInfo, error) {
	if hook, ok := p.(provider.BeforeGenerateHook); ok {
		if err := hook.OnBeforeGenerate(ctx, genCtx); err != nil {
			return nil, errors.Wrap(err, "before-generate hook failed")
		}
	}

	// providers must not retain or modify the seed
	seedCopy := make([]byte, len(seed))
	copy(seedCopy, seed)
	defer hdkey.Zero(seedCopy)

	wallet, err := generateRecovered(ctx, id, p, seedCopy)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, provider.DerivationFailure(id, "generate wallet", errors.New("provider returned no wallet"))
	}

	if hook, ok := p.(provider.AfterGenerateHook); ok {
		if err := hook.OnAfterGenerate(ctx, wallet, genCtx); err != nil {
			return nil, errors.Wrap(err, "after-generate hook failed")
		}
	}

	return wallet, nil
}

// generateRecovered turns a panicking provider into a DerivationFailure of that provider only
func generateRecovered(ctx context.Context, id string, p provider.Provider, seed []byte) (wallet *provider.WalletInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			wallet = nil
			err = provider.DerivationFailure(id, "generate wallet", errors.Errorf("provider panicked: %T", r))
		}
	}()

	return p.GenerateWallet(ctx, seed)
}

// ValidateAddress delegates to the provider registered under id, false for unknown ids
func (f *Factory) ValidateAddress(id string, address string) bool {
	p, ok := f.registry.Get(id)
	if !ok {
		return false
	}

	return p.ValidateAddress(address)
}

// ExplorerURL delegates to the provider registered under id
func (f *Factory) ExplorerURL(id string, address string) (string, bool) {
	p, ok := f.registry.Get(id)
	if !ok {
		return "", false
	}

	return p.ExplorerURL(address), true
}

// TestnetExplorerURL returns the testnet explorer URL if the provider supports testnet
func (f *Factory) TestnetExplorerURL(id string, address string) (string, bool) {
	p, ok := f.registry.Get(id)
	if !ok {
		return "", false
	}

	testnet, ok := p.(provider.TestnetProvider)
	if !ok {
		return "", false
	}

	return testnet.TestnetExplorerURL(address), true
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	return unique
}
