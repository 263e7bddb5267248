package credentials

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/hkdf"
)

// FileKeychain is a keychain backed by AES-GCM sealed files.
//
// SECURITY: the directory is created 0700 and files 0600 (owner only);
// file names are hashes of the service identifier so directory listings
// leak nothing; the sealing key is derived from the master secret via
// HKDF-SHA256 and a wrong secret fails closed on open.
type FileKeychain struct {
	dir  string
	aead cipher.AEAD
}

// hkdfInfo binds derived keys to this store so the same master secret
// used elsewhere yields a different key.
const hkdfInfo = "authbridge/keychain"

// NewFileKeychain creates the storage directory if needed and derives
// the sealing key from masterSecret.
func NewFileKeychain(dir string, masterSecret []byte) (*FileKeychain, error) {
	if len(masterSecret) == 0 {
		return nil, errors.New("master secret must not be empty")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create keychain directory: %w", err)
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, masterSecret, nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive sealing key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &FileKeychain{dir: dir, aead: aead}, nil
}

func (k *FileKeychain) Get(service string) ([]byte, error) {
	blob, err := os.ReadFile(k.path(service))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ns := k.aead.NonceSize()
	if len(blob) < ns {
		return nil, errors.New("sealed blob too short")
	}
	plaintext, err := k.aead.Open(nil, blob[:ns], blob[ns:], []byte(service))
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials: %w", err)
	}
	return plaintext, nil
}

func (k *FileKeychain) Set(service string, data []byte) error {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}
	sealed := k.aead.Seal(nonce, nonce, data, []byte(service))
	return os.WriteFile(k.path(service), sealed, 0600)
}

func (k *FileKeychain) Delete(service string) error {
	err := os.Remove(k.path(service))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// path hashes the service name into a filesystem-safe identifier.
func (k *FileKeychain) path(service string) string {
	sum := sha256.Sum256([]byte(service))
	return filepath.Join(k.dir, hex.EncodeToString(sum[:16])+".cred")
}

var _ Keychain = (*FileKeychain)(nil)
