package registry

import (
	"context"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

// Candidate is a provider produced by a PluginSource, not yet validated
type Candidate struct {
	// Name identifies the candidate within its source (e.g. a directory name)
	Name string

	// ManifestID is the id declared by the plugin manifest, empty if the source has none
	ManifestID string

	Provider provider.Provider
}

// PluginSource discovers and instantiates plugin candidates
type PluginSource interface {
	// ListCandidates returns the names of all candidates the source offers
	ListCandidates(ctx context.Context) ([]string, error)

	// Load instantiates one candidate
	Load(ctx context.Context, name string) (*Candidate, error)
}

// LoadReport lists registered ids and rejected candidates of one Load call
type LoadReport struct {
	Loaded   []string
	Rejected []error
}

// Load registers every valid candidate of src. Invalid candidates are logged,
// collected in the report and never registered. Only a failure to list
// candidates is returned as an error.
func (r *Registry) Load(ctx context.Context, src PluginSource) (*LoadReport, error) {
	ctx = util.ContextWithComponent(ctx, "plugin_loader")
	log := util.LogFromContext(ctx)

	names, err := src.ListCandidates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plugin candidates")
	}

	report := &LoadReport{}
	for _, name := range names {
		candidate, err := src.Load(ctx, name)
		if err == nil {
			err = ValidateCandidate(candidate)
		}
		if err != nil {
			if !errors.Is(err, provider.ErrInvalidPlugin) {
				err = provider.InvalidPlugin(name, err.Error())
			}
			log.Error().Err(err).Str("plugin", name).Msg("Rejected plugin")
			report.Rejected = append(report.Rejected, err)
			continue
		}

		if err := r.Register(ctx, candidate.Provider); err != nil {
			log.Error().Err(err).Str("plugin", name).Msg("Failed to register plugin")
			report.Rejected = append(report.Rejected, err)
			continue
		}

		id := candidate.Provider.Metadata().ID
		log.Info().Str("plugin", name).Str("provider", id).Msg("Loaded plugin")
		report.Loaded = append(report.Loaded, id)
	}

	return report, nil
}

// ValidateCandidate checks the candidate's provider against its manifest
func ValidateCandidate(c *Candidate) error {
	if c == nil {
		return provider.InvalidPlugin("", "nil candidate")
	}

	return ValidateProvider(c.Provider, c.ManifestID)
}

// ValidateProvider checks the structural requirements of the provider contract.
// manifestID, if non-empty, must equal the provider id.
func ValidateProvider(p provider.Provider, manifestID string) error {
	if p == nil {
		return provider.InvalidPlugin(manifestID, "provider is nil")
	}

	meta := p.Metadata()
	switch {
	case meta.ID == "":
		return provider.InvalidPlugin(manifestID, "metadata id is empty")
	case !isValidID(meta.ID):
		return provider.InvalidPlugin(meta.ID, "metadata id must be lowercase without whitespace")
	case meta.Name == "":
		return provider.InvalidPlugin(meta.ID, "metadata name is empty")
	case manifestID != "" && manifestID != meta.ID:
		return provider.InvalidPlugin(meta.ID, "metadata id does not match manifest id "+manifestID)
	}

	return nil
}

func isValidID(id string) bool {
	if id != strings.ToLower(id) {
		return false
	}

	return strings.IndexFunc(id, unicode.IsSpace) < 0
}
