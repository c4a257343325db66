package registry_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitpaper/paper-wallet/internal/test"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
)

func TestRegisterAndLookup(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register(t.Context(), test.NewProvider("alpha")))
	require.NoError(t, r.Register(t.Context(), test.NewProvider("beta")))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"alpha", "beta"}, r.IDs())
	assert.True(t, r.Has("alpha"))
	assert.False(t, r.Has("gamma"))

	p, ok := r.Get("beta")
	require.True(t, ok)
	assert.Equal(t, "beta", p.Metadata().ID)

	_, ok = r.Get("gamma")
	assert.False(t, ok)
}

func TestRegisterOverwriteKeepsSlot(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register(t.Context(), test.NewProvider("alpha")))
	require.NoError(t, r.Register(t.Context(), test.NewProvider("beta")))

	replacement := test.NewProvider("alpha")
	replacement.Meta.Name = "Replacement"
	require.NoError(t, r.Register(t.Context(), replacement))

	assert.Equal(t, []string{"alpha", "beta"}, r.IDs())

	p, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "Replacement", p.Metadata().Name)
}

func TestRegisterRejectsInvalidProviders(t *testing.T) {
	r := registry.New()

	err := r.Register(t.Context(), nil)
	assert.ErrorIs(t, err, provider.ErrInvalidPlugin)

	for _, id := range []string{"", "Alpha", "al pha"} {
		err := r.Register(t.Context(), test.NewProvider(id))
		assert.ErrorIs(t, err, provider.ErrInvalidPlugin, id)
	}

	nameless := test.NewProvider("alpha")
	nameless.Meta.Name = ""
	assert.ErrorIs(t, r.Register(t.Context(), nameless), provider.ErrInvalidPlugin)

	assert.Equal(t, 0, r.Len())
}

func TestProvidersDropsUnknownIDs(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(t.Context(), test.NewProvider("alpha")))
	require.NoError(t, r.Register(t.Context(), test.NewProvider("beta")))

	list := r.Providers([]string{"beta", "missing", "alpha"})
	require.Len(t, list, 2)
	assert.Equal(t, "beta", list[0].Metadata().ID)
	assert.Equal(t, "alpha", list[1].Metadata().ID)
}

func TestUnregisterAndClear(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(t.Context(), test.NewProvider("alpha")))
	require.NoError(t, r.Register(t.Context(), test.NewProvider("beta")))
	require.NoError(t, r.Register(t.Context(), test.NewProvider("gamma")))

	assert.True(t, r.Unregister("beta"))
	assert.False(t, r.Unregister("beta"))
	assert.False(t, r.Has("beta"))
	assert.Equal(t, []string{"alpha", "gamma"}, r.IDs())

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.List())
}

func TestValidateProvider(t *testing.T) {
	assert.NoError(t, registry.ValidateProvider(test.NewProvider("alpha"), ""))
	assert.NoError(t, registry.ValidateProvider(test.NewProvider("alpha"), "alpha"))
	assert.ErrorIs(t, registry.ValidateProvider(test.NewProvider("alpha"), "beta"), provider.ErrInvalidPlugin)
	assert.ErrorIs(t, registry.ValidateCandidate(nil), provider.ErrInvalidPlugin)
}

type fakeSource struct {
	candidates map[string]*registry.Candidate
	errs       map[string]error
	names      []string
	listErr    error
}

func (s *fakeSource) ListCandidates(context.Context) ([]string, error) {
	return s.names, s.listErr
}

func (s *fakeSource) Load(_ context.Context, name string) (*registry.Candidate, error) {
	if err, ok := s.errs[name]; ok {
		return nil, err
	}

	return s.candidates[name], nil
}

func TestLoad(t *testing.T) {
	src := &fakeSource{
		names: []string{"good", "mismatch", "broken", "nameless"},
		candidates: map[string]*registry.Candidate{
			"good":     {Name: "good", ManifestID: "good", Provider: test.NewProvider("good")},
			"mismatch": {Name: "mismatch", ManifestID: "other", Provider: test.NewProvider("mismatch")},
			"nameless": {Name: "nameless", Provider: &test.Provider{Meta: provider.Metadata{ID: "nameless"}}},
		},
		errs: map[string]error{
			"broken": errors.New("manifest missing"),
		},
	}

	r := registry.New()
	report, err := r.Load(t.Context(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"good"}, report.Loaded)
	require.Len(t, report.Rejected, 3)
	for _, rejected := range report.Rejected {
		assert.ErrorIs(t, rejected, provider.ErrInvalidPlugin)
	}
	assert.Contains(t, report.Rejected[1].Error(), "manifest missing")

	assert.Equal(t, []string{"good"}, r.IDs())
}

func TestLoadListFailure(t *testing.T) {
	r := registry.New()

	_, err := r.Load(t.Context(), &fakeSource{listErr: errors.New("boom")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 0, r.Len())
}
