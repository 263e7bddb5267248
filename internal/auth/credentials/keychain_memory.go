package credentials

import "sync"

// InMemoryKeychain stores blobs in memory for tests/dev.
type InMemoryKeychain struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewInMemoryKeychain constructs an empty in-memory keychain.
func NewInMemoryKeychain() *InMemoryKeychain {
	return &InMemoryKeychain{blobs: make(map[string][]byte)}
}

func (k *InMemoryKeychain) Get(service string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if blob, ok := k.blobs[service]; ok {
		out := make([]byte, len(blob))
		copy(out, blob)
		return out, nil
	}
	return nil, ErrNotFound
}

func (k *InMemoryKeychain) Set(service string, data []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	blob := make([]byte, len(data))
	copy(blob, data)
	k.blobs[service] = blob
	return nil
}

func (k *InMemoryKeychain) Delete(service string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.blobs, service)
	return nil
}

var _ Keychain = (*InMemoryKeychain)(nil)
