package keystore

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// decrypt verifies the MAC and decrypts a keystore v3 style document
func (s *service) decrypt(keystoreJSON *KeystoreJSON, password string) ([]byte, error) {
	c := keystoreJSON.Crypto
	if c.Cipher != cipherName || c.KDF != kdfName {
		return nil, errors.Errorf("unsupported cipher %q or kdf %q", c.Cipher, c.KDF)
	}

	params := &ScryptParams{DKLen: c.KDFParams.DKLen, N: c.KDFParams.N, R: c.KDFParams.R, P: c.KDFParams.P}
	if err := params.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid kdf params")
	}

	salt, err := hex.DecodeString(c.KDFParams.Salt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode salt")
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(c.CipherParams.IV)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode IV")
	}

	if len(iv) != ivLength {
		return nil, errors.Errorf("IV must be %d bytes, got %d", ivLength, len(iv))
	}

	ciphertext, err := hex.DecodeString(c.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode ciphertext")
	}

	expectedMAC, err := hex.DecodeString(c.MAC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode MAC")
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	mac := calculateMAC(derivedKey[aesKeyLen:2*aesKeyLen], ciphertext)
	if subtle.ConstantTimeCompare(mac, expectedMAC) != 1 {
		return nil, ErrInvalidPassword
	}

	plaintext, err := aes128CTR(derivedKey[:aesKeyLen], iv, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt")
	}

	return plaintext, nil
}
