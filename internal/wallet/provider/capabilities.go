package provider

import (
	"github.com/pkg/errors"
)

// SeedLength is the length of a BIP39 seed
const SeedLength = 64

// CheckSeed rejects seeds that are not exactly SeedLength bytes
func CheckSeed(id string, seed []byte) error {
	if len(seed) != SeedLength {
		return DerivationFailure(id, "check seed", errors.Errorf("seed must be %d bytes, got %d", SeedLength, len(seed)))
	}

	return nil
}

// Capabilities is the optional feature set of a provider
type Capabilities struct {
	Testnet        bool
	MultiFormat    bool
	BeforeGenerate bool
	AfterGenerate  bool
	AddressCheck   bool
}

// CapabilitiesOf queries the optional interfaces implemented by p
func CapabilitiesOf(p Provider) Capabilities {
	var c Capabilities

	_, c.Testnet = p.(TestnetProvider)
	_, c.MultiFormat = p.(MultiFormatProvider)
	_, c.BeforeGenerate = p.(BeforeGenerateHook)
	_, c.AfterGenerate = p.(AfterGenerateHook)
	_, c.AddressCheck = p.(AddressChecker)

	return c
}

// Names lists the supported capabilities in a stable order
func (c Capabilities) Names() []string {
	names := []string{}
	if c.MultiFormat {
		names = append(names, "multi-format")
	}
	if c.Testnet {
		names = append(names, "testnet")
	}
	if c.BeforeGenerate || c.AfterGenerate {
		names = append(names, "lifecycle-hooks")
	}
	if c.AddressCheck {
		names = append(names, "address-check")
	}

	return names
}
