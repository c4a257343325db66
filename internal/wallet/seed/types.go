package seed

// Manager holds the BIP39 seed of one generation request
type Manager interface {
	// Initialize validates the mnemonic and derives the 64-byte seed (empty passphrase allowed)
	Initialize(mnemonic string, passphrase string) error

	// GetSeed returns a copy of the seed, nil before Initialize
	GetSeed() []byte

	// Mnemonic returns the mnemonic the seed was derived from
	Mnemonic() string

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear zeroes the seed and forgets the mnemonic
	Clear()
}
