package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 32
	ivLength   = aes.BlockSize
	aesKeyLen  = 16
)

// encrypt encrypts plaintext into a keystore v3 style document
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func (s *service) encrypt(plaintext []byte, password string) (*KeystoreJSON, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, s.params.N, s.params.R, s.params.P, s.params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	ciphertext, err := aes128CTR(derivedKey[:aesKeyLen], iv, plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt")
	}

	mac := calculateMAC(derivedKey[aesKeyLen:2*aesKeyLen], ciphertext)

	keystoreJSON := &KeystoreJSON{
		Version: Version,
		ID:      uuid.New().String(),
		Meta:    Meta,
	}

	keystoreJSON.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	keystoreJSON.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	keystoreJSON.Crypto.Cipher = cipherName
	keystoreJSON.Crypto.KDF = kdfName
	keystoreJSON.Crypto.KDFParams.DKLen = s.params.DKLen
	keystoreJSON.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	keystoreJSON.Crypto.KDFParams.N = s.params.N
	keystoreJSON.Crypto.KDFParams.R = s.params.R
	keystoreJSON.Crypto.KDFParams.P = s.params.P
	keystoreJSON.Crypto.MAC = hex.EncodeToString(mac)

	return keystoreJSON, nil
}

// aes128CTR is its own inverse
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func aes128CTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}

// calculateMAC is Keccak-256(derivedKey[16:32] || ciphertext)
func calculateMAC(key []byte, ciphertext []byte) []byte {
	return crypto.Keccak256(key, ciphertext)
}
