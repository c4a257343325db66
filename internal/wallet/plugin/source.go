package plugin

import (
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/chains/ethereum"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
	"github.com/bitpaper/paper-wallet/internal/wallet/registry"
)

// DriverEVM builds an Ethereum-family provider from the manifest
const DriverEVM = "evm"

// Driver instantiates the provider of a validated manifest
type Driver func(m *Manifest) (provider.Provider, error)

var _ registry.PluginSource = (*DirSource)(nil)

// DirSource reads <name>/plugin.json manifests from a directory.
// Directories starting with "_" or "." are skipped.
type DirSource struct {
	fsys     fs.FS
	validate *validator.Validate
	drivers  map[string]Driver
}

// NewDirSource creates a source over fsys with the built-in drivers
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{
		fsys:     fsys,
		validate: newValidator(),
		drivers: map[string]Driver{
			DriverEVM: newEVMProvider,
		},
	}
}

// RegisterDriver adds or replaces a driver
func (s *DirSource) RegisterDriver(name string, driver Driver) {
	s.drivers[name] = driver
}

// ListCandidates implements registry.PluginSource
func (s *DirSource) ListCandidates(ctx context.Context) ([]string, error) {
	log := util.LogFromContext(ctx)

	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read plugin directory")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}

		if _, err := fs.Stat(s.fsys, path.Join(name, ManifestFile)); err != nil {
			log.Debug().Str("plugin", name).Msg("Skipping directory without manifest")
			continue
		}

		names = append(names, name)
	}

	return names, nil
}

// Load implements registry.PluginSource
func (s *DirSource) Load(_ context.Context, name string) (*registry.Candidate, error) {
	data, err := fs.ReadFile(s.fsys, path.Join(name, ManifestFile))
	if err != nil {
		return nil, provider.InvalidPlugin(name, "failed to read manifest: "+err.Error())
	}

	m, err := ParseManifest(s.validate, data)
	if err != nil {
		return nil, provider.InvalidPlugin(name, err.Error())
	}

	driverName := m.Config.Driver
	if driverName == "" {
		driverName = DriverEVM
	}

	driver, ok := s.drivers[driverName]
	if !ok {
		return nil, provider.InvalidPlugin(m.ID, "unknown driver "+driverName)
	}

	p, err := driver(m)
	if err != nil {
		return nil, provider.InvalidPlugin(m.ID, err.Error())
	}

	return &registry.Candidate{
		Name:       name,
		ManifestID: m.ID,
		Provider:   p,
	}, nil
}

func newEVMProvider(m *Manifest) (provider.Provider, error) {
	p, err := ethereum.New(ethereum.Config{
		Metadata:           m.Metadata(),
		ExplorerURL:        m.ExplorerURLs.Mainnet,
		TestnetExplorerURL: m.ExplorerURLs.Testnet,
		FormatNote:         m.Config.FormatNote,
		HidePublicKey:      m.Config.HidePublicKey,
		Notes:              m.Config.Notes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create EVM provider")
	}

	return p, nil
}
