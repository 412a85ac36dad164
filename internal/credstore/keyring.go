package credstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringSource reads the store from a single secret in the OS-native credential storage
// (macOS Keychain, Windows Credential Manager, Linux Secret Service). The secret holds the
// same one-URL-per-line text as a store file.
type KeyringSource struct {
	service string
	user    string
}

// Compile-time check to ensure KeyringSource implements Source
var _ Source = (*KeyringSource)(nil)

// NewKeyringSource creates a KeyringSource for the given service and user identifiers.
func NewKeyringSource(service, user string) (*KeyringSource, error) {
	if service == "" {
		return nil, fmt.Errorf("service cannot be empty")
	}
	if user == "" {
		return nil, fmt.Errorf("user cannot be empty")
	}

	return &KeyringSource{
		service: service,
		user:    user,
	}, nil
}

// Open reads the secret. A missing secret is returned as an fs.ErrNotExist error.
func (k *KeyringSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	secret, err := keyring.Get(k.service, k.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", fs.ErrNotExist, err)
		}
		return nil, &OpenError{Path: k.String(), Err: err}
	}

	return io.NopCloser(strings.NewReader(secret)), nil
}

// String returns a keyring:<service>/<user> description.
func (k *KeyringSource) String() string {
	return "keyring:" + k.service + "/" + k.user
}
