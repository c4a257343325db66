package seed

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

const (
	// EntropyBits gives 24-word mnemonics
	EntropyBits = 256

	// DryRunMnemonic is a well-known valid test mnemonic. Wallets derived from it are public.
	DryRunMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
)

// ErrInvalidMnemonic is returned for mnemonics failing the BIP39 word list or checksum check
var ErrInvalidMnemonic = errors.New("invalid BIP39 mnemonic")

// GenerateMnemonic returns a new random 24-word mnemonic
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(EntropyBits)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to create mnemonic")
	}

	return mnemonic, nil
}

// NormalizeMnemonic collapses whitespace and lowercases the words
func NormalizeMnemonic(mnemonic string) string {
	return strings.ToLower(strings.Join(strings.Fields(mnemonic), " "))
}

// ValidateMnemonic checks the word list and checksum
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(NormalizeMnemonic(mnemonic))
}

// manager implements seed management with thread-safe access
type manager struct {
	seed        []byte
	mnemonic    string
	mu          sync.RWMutex
	initialized bool
}

// NewManager creates a new seed Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{}
}

// Initialize derives the seed with PBKDF2-HMAC-SHA512 (2048 rounds, salt "mnemonic"+passphrase)
func (m *manager) Initialize(mnemonic string, passphrase string) error {
	mnemonic = NormalizeMnemonic(mnemonic)

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return errors.Wrap(ErrInvalidMnemonic, err.Error())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
	m.seed = seed
	m.mnemonic = mnemonic
	m.initialized = true

	return nil
}

// GetSeed gets the seed (returns a copy to prevent external modification)
func (m *manager) GetSeed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || m.seed == nil {
		return nil
	}

	seedCopy := make([]byte, len(m.seed))
	copy(seedCopy, m.seed)
	return seedCopy
}

func (m *manager) Mnemonic() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.mnemonic
}

// IsInitialized checks if seed is initialized
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear clears the seed from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
}

func (m *manager) clear() {
	for i := range m.seed {
		m.seed[i] = 0
	}
	m.seed = nil
	m.mnemonic = ""
	m.initialized = false
}
