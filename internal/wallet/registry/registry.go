// Package registry catalogs blockchain providers by id.
package registry

import (
	"context"
	"sync"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

// Registry maps provider ids to providers. The zero value is not usable, use New.
// Listing order is registration order; overriding an id keeps its original slot.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]provider.Provider
	order     []string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		providers: make(map[string]provider.Provider),
	}
}

// Register adds p under Metadata().ID. An existing entry with the same id is
// replaced and a warning is logged.
func (r *Registry) Register(ctx context.Context, p provider.Provider) error {
	if err := ValidateProvider(p, ""); err != nil {
		return err
	}

	meta := p.Metadata()

	r.mu.Lock()
	_, exists := r.providers[meta.ID]
	r.providers[meta.ID] = p
	if !exists {
		r.order = append(r.order, meta.ID)
	}
	r.mu.Unlock()

	log := util.LogFromContext(ctx)
	if exists {
		log.Warn().Str("provider", meta.ID).Msg("Provider already registered, overwriting")
	} else {
		log.Debug().Str("provider", meta.ID).Str("version", meta.Version).Msg("Registered provider")
	}

	return nil
}

// Get returns the provider registered under id
func (r *Registry) Get(id string) (provider.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[id]
	return p, ok
}

// Has reports whether id is registered
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// List returns all providers in registration order
func (r *Registry) List() []provider.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]provider.Provider, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.providers[id])
	}

	return list
}

// IDs returns all registered ids in registration order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Providers resolves ids in the given order, silently dropping unknown ids
func (r *Registry) Providers(ids []string) []provider.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]provider.Provider, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.providers[id]; ok {
			list = append(list, p)
		}
	}

	return list
}

// Unregister removes id and reports whether it was registered
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[id]; !ok {
		return false
	}

	delete(r.providers, id)
	for i, registered := range r.order {
		if registered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true
}

// Clear removes every provider
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers = make(map[string]provider.Provider)
	r.order = nil
}

// Len returns the number of registered providers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
