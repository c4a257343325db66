// Package plugin loads providers described by plugin.json manifests.
package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/wallet/hdkey"
	"github.com/bitpaper/paper-wallet/internal/wallet/provider"
)

// ManifestFile is the manifest file name inside a plugin directory
const ManifestFile = "plugin.json"

// Manifest is the plugin.json document
type Manifest struct {
	ID          string `json:"id" validate:"required,lowercase"`
	Name        string `json:"name" validate:"required"`
	Symbol      string `json:"symbol" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
	Version     string `json:"version" validate:"required"`
	Description string `json:"description" validate:"required"`
	Author      string `json:"author" validate:"required"`

	Dependencies   map[string]string `json:"dependencies,omitempty"`
	Features       map[string]any    `json:"features,omitempty"`
	DerivationPath string            `json:"derivationPath,omitempty" validate:"omitempty,bip44path"`

	ExplorerURLs ExplorerURLs `json:"explorerUrls"`

	Config Config `json:"config"`
}

// ExplorerURLs are templates containing {address} or prefixes the address is appended to
type ExplorerURLs struct {
	Mainnet string `json:"mainnet" validate:"required"`
	Testnet string `json:"testnet,omitempty"`
}

// Config selects and parameterizes the Go implementation of the plugin.
// The whole object is optional, an empty Driver selects DriverEVM.
type Config struct {
	Driver        string   `json:"driver,omitempty"`
	FormatNote    string   `json:"formatNote,omitempty"`
	Notes         []string `json:"notes,omitempty"`
	HidePublicKey bool     `json:"hidePublicKey,omitempty"`
}

// Metadata converts the manifest to provider metadata
func (m *Manifest) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:             m.ID,
		Name:           m.Name,
		Symbol:         m.Symbol,
		Icon:           m.Icon,
		Version:        m.Version,
		Description:    m.Description,
		Author:         m.Author,
		DerivationPath: m.DerivationPath,
	}
}

func newValidator() *validator.Validate {
	validate := validator.New()

	if err := validate.RegisterValidation("bip44path", func(fl validator.FieldLevel) bool {
		_, err := hdkey.ParsePath(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register bip44path validation: %v", err))
	}

	return validate
}

// ParseManifest decodes and validates a manifest document
func ParseManifest(validate *validator.Validate, data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode manifest")
	}

	if err := validate.Struct(&m); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return nil, errors.Errorf("manifest field %s failed %q validation", fieldErr.Namespace(), fieldErr.Tag())
		}
		return nil, errors.Wrap(err, "invalid manifest")
	}

	return &m, nil
}
