package webruntime

import "sync"

// Registry tracks the invisible tabs currently alive so logout can sweep
// leftovers before starting its own sessions.
type Registry struct {
	mu   sync.RWMutex
	tabs map[string]Tab
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{tabs: make(map[string]Tab)}
}

// Add records a live tab.
func (r *Registry) Add(tab Tab) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tabs[tab.ID()] = tab
}

// Remove forgets a tab. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tabs, id)
}

// Len reports the number of live tabs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tabs)
}

// CloseAll closes every tracked tab and empties the registry. The first
// close error is returned after all tabs have been attempted.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	tabs := make([]Tab, 0, len(r.tabs))
	for _, tab := range r.tabs {
		tabs = append(tabs, tab)
	}
	r.tabs = make(map[string]Tab)
	r.mu.Unlock()

	var firstErr error
	for _, tab := range tabs {
		if err := tab.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
