// Package hdkey implements BIP32 derivation along BIP44 paths.
package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// Well-known BIP44 paths (first external address of account 0)
const (
	BitcoinPath  = "m/44'/0'/0'/0/0"
	EthereumPath = "m/44'/60'/0'/0/0"

	privateKeyLength = 32
)

// ParsePath parses a BIP44 path string into child indices
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func ParsePath(path string) ([]uint32, error) {
	p := strings.TrimSpace(path)
	if len(p) == 0 || (p[0] != 'm' && p[0] != 'M') {
		return nil, fmt.Errorf("invalid BIP44 path: %q", path)
	}

	p = p[1:]
	if p == "" {
		return []uint32{}, nil
	}
	if p[0] != '/' {
		return nil, fmt.Errorf("invalid BIP44 path: %q", path)
	}

	parts := strings.Split(p[1:], "/")
	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || index >= uint64(bip32.FirstHardenedChild) {
			return nil, fmt.Errorf("invalid path segment: %q", part)
		}

		if hardened {
			index += uint64(bip32.FirstHardenedChild)
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}

// DeriveKey derives the extended key at path from seed
func DeriveKey(seed []byte, path string) (*bip32.Key, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse BIP44 path")
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return key, nil
}

// DerivePrivateKey derives the raw 32-byte private key at path.
// WARNING: Caller must clear the private key after use
func DerivePrivateKey(seed []byte, path string) ([]byte, error) {
	key, err := DeriveKey(seed, path)
	if err != nil {
		return nil, err
	}

	if len(key.Key) > privateKeyLength {
		return nil, errors.Errorf("unexpected private key length %d", len(key.Key))
	}

	// left-pad to the fixed secp256k1 scalar size
	privateKey := make([]byte, privateKeyLength)
	copy(privateKey[privateKeyLength-len(key.Key):], key.Key)

	return privateKey, nil
}

// Zero overwrites b
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
