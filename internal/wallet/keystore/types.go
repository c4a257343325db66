package keystore

import (
	"context"

	"github.com/pkg/errors"
)

const (
	// Version of the keystore document, follows the Ethereum keystore v3 layout
	Version = 3

	cipherName = "aes-128-ctr"
	kdfName    = "scrypt"

	// Meta marks documents holding a paper wallet set
	Meta = "bitpaper-wallet-set"
)

// ErrInvalidPassword is returned when the MAC does not match
var ErrInvalidPassword = errors.New("invalid password: MAC mismatch")

// Service encrypts and decrypts paper wallet documents
type Service interface {
	// Encrypt encrypts plaintext with a key derived from password
	Encrypt(ctx context.Context, plaintext []byte, password string) (*KeystoreJSON, error)

	// Decrypt verifies the MAC and decrypts the document
	Decrypt(ctx context.Context, keystore *KeystoreJSON, password string) ([]byte, error)

	// WriteFile encrypts plaintext and writes the JSON document with mode 0600
	WriteFile(ctx context.Context, path string, plaintext []byte, password string) error

	// ReadFile reads and decrypts a document written by WriteFile
	ReadFile(ctx context.Context, path string, password string) ([]byte, error)
}

// KeystoreJSON is the encrypted document, laid out like an Ethereum keystore v3 file
//
//nolint:revive // KeystoreJSON is the standard name for Ethereum keystore JSON structure
type KeystoreJSON struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Meta    string `json:"meta,omitempty"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// ScryptParams defines scrypt KDF parameters
type ScryptParams struct {
	DKLen int // Derived key length (32 bytes)
	N     int // CPU/memory cost parameter
	R     int // Block size parameter
	P     int // Parallelization parameter
}

// DefaultScryptParams returns the standard Ethereum keystore v3 parameters
func DefaultScryptParams() *ScryptParams {
	const (
		scryptDKLen = 32     // Derived key length (32 bytes)
		scryptN     = 262144 // CPU/memory cost parameter (2^18)
		scryptR     = 8      // Block size parameter
		scryptP     = 1      // Parallelization parameter
	)

	return &ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}

// LightScryptParams trades strength for speed (N = 2^12)
func LightScryptParams() *ScryptParams {
	params := DefaultScryptParams()
	params.N = 4096
	params.P = 6

	return params
}

// Upper bounds for scrypt parameters, keystore files are untrusted input
const (
	maxDKLen     = 64
	maxScryptN   = 1 << 20
	maxScryptR   = 32
	maxScryptP   = 16
	maxScryptMem = 1 << 30 // 128 * N * r bytes
)

func (p *ScryptParams) validate() error {
	const minDKLen = 32

	if p.DKLen < minDKLen || p.DKLen > maxDKLen {
		return errors.Errorf("scrypt dklen must be between %d and %d, got %d", minDKLen, maxDKLen, p.DKLen)
	}
	if p.N <= 1 || p.N > maxScryptN || p.N&(p.N-1) != 0 {
		return errors.Errorf("scrypt N must be a power of two between 2 and %d, got %d", maxScryptN, p.N)
	}
	if p.R <= 0 || p.R > maxScryptR || p.P <= 0 || p.P > maxScryptP {
		return errors.Errorf("scrypt r must be in 1..%d and p in 1..%d, got r=%d p=%d", maxScryptR, maxScryptP, p.R, p.P)
	}
	if 128*p.N*p.R > maxScryptMem {
		return errors.Errorf("scrypt N=%d r=%d exceeds the memory limit of %d bytes", p.N, p.R, maxScryptMem)
	}

	return nil
}
