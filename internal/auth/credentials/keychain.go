// Package credentials persists provider-issued tokens in a secure,
// at-rest-encrypted key/value store scoped by a fixed service name —
// the platform keychain equivalent.
package credentials

import (
	"encoding/json"
	"errors"
	"log/slog"

	"authbridge/internal/auth/models"
	"authbridge/pkg/autherrors"
)

// ErrNotFound is returned when no blob exists for a service name.
var ErrNotFound = errors.New("credentials not found")

// Keychain is the secure key/value boundary. Values are opaque blobs;
// implementations own encryption at rest.
type Keychain interface {
	Get(service string) ([]byte, error)
	Set(service string, data []byte) error
	Delete(service string) error
}

// Store reads and writes Credentials through a Keychain under a fixed
// service identifier.
type Store struct {
	keychain Keychain
	service  string
	logger   *slog.Logger
}

// StoreOption configures the Store.
type StoreOption func(*Store)

func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore constructs a credential store scoped to service.
func NewStore(keychain Keychain, service string, opts ...StoreOption) *Store {
	s := &Store{keychain: keychain, service: service}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Save persists credentials. Written on successful login or renewal.
// Token values are never logged.
func (s *Store) Save(c *models.Credentials) error {
	data, err := json.Marshal(c)
	if err != nil {
		return autherrors.Wrap(err, autherrors.CodeCredentialsStorage, "could not encode credentials")
	}
	if err := s.keychain.Set(s.service, data); err != nil {
		return autherrors.Wrap(err, autherrors.CodeCredentialsStorage, "could not write credentials to keychain")
	}
	s.logger.Info("credentials stored",
		"service", s.service,
		"has_refresh_token", c.RefreshToken != "",
	)
	return nil
}

// Load reads credentials back. Returns ErrNotFound when none are stored.
func (s *Store) Load() (*models.Credentials, error) {
	data, err := s.keychain.Get(s.service)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, autherrors.Wrap(err, autherrors.CodeCredentialsStorage, "could not read credentials from keychain")
	}
	var c models.Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeCredentialsStorage, "could not decode stored credentials")
	}
	return &c, nil
}

// Clear deletes stored credentials. Deleting an empty store is not an error.
func (s *Store) Clear() error {
	if err := s.keychain.Delete(s.service); err != nil {
		return autherrors.Wrap(err, autherrors.CodeCredentialsClearing, "could not delete credentials from keychain")
	}
	s.logger.Info("credentials cleared", "service", s.service)
	return nil
}
