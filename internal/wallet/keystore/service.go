// Package keystore encrypts paper wallet documents with a password.
package keystore

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/bitpaper/paper-wallet/internal/util"
)

// FileMode of written keystore files
const FileMode os.FileMode = 0o600

type service struct {
	params *ScryptParams
}

// NewService creates a keystore service, nil params means DefaultScryptParams
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(params *ScryptParams) (Service, error) {
	if params == nil {
		params = DefaultScryptParams()
	}
	if err := params.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scrypt params")
	}

	return &service{params: params}, nil
}

// Encrypt implements Service
func (s *service) Encrypt(ctx context.Context, plaintext []byte, password string) (*KeystoreJSON, error) {
	if password == "" {
		return nil, errors.New("password must not be empty")
	}

	keystoreJSON, err := s.encrypt(plaintext, password)
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Msg("Failed to encrypt document")
		return nil, errors.Wrap(err, "failed to encrypt document")
	}

	return keystoreJSON, nil
}

// Decrypt implements Service
func (s *service) Decrypt(ctx context.Context, keystore *KeystoreJSON, password string) ([]byte, error) {
	if keystore == nil {
		return nil, errors.New("keystore is nil")
	}

	plaintext, err := s.decrypt(keystore, password)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("keystore_id", keystore.ID).Msg("Failed to decrypt document")
		return nil, errors.Wrap(err, "failed to decrypt document")
	}

	return plaintext, nil
}

// WriteFile implements Service
func (s *service) WriteFile(ctx context.Context, path string, plaintext []byte, password string) error {
	keystoreJSON, err := s.Encrypt(ctx, plaintext, password)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(keystoreJSON, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore JSON")
	}

	if err := os.WriteFile(path, data, FileMode); err != nil {
		return errors.Wrapf(err, "failed to write keystore file %s", path)
	}

	util.LogFromContext(ctx).Info().Str("path", path).Str("keystore_id", keystoreJSON.ID).Msg("Wrote encrypted document")

	return nil
}

// ReadFile implements Service
func (s *service) ReadFile(ctx context.Context, path string, password string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore file %s", path)
	}

	var keystoreJSON KeystoreJSON
	if err := json.Unmarshal(data, &keystoreJSON); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal keystore JSON")
	}

	return s.Decrypt(ctx, &keystoreJSON, password)
}
