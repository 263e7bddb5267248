// Package webruntime abstracts the embedded browser surface that the
// bridge drives: invisible background tabs, their cookies, and their
// lifecycle events.
package webruntime

import (
	"context"
	"time"
)

// Cookie is the minimal cookie shape the bridge injects into tabs.
// Only the session-transfer cookie flows through here; values are never
// logged.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
}

// Tab is a single browser tab under bridge control.
type Tab interface {
	ID() string
	URL() string

	// SetCookie injects a cookie into the tab's store before its page
	// load can depend on it.
	SetCookie(ctx context.Context, cookie Cookie) error

	// Close tears the tab down. Closing an already-closed tab is a no-op.
	Close() error

	// OnClose registers fn to run once when the tab closes, whether by
	// Close or by the runtime discarding it. Registration after close
	// fires fn immediately.
	OnClose(fn func())
}

// Runtime creates invisible tabs. Implementations bind to a real
// browser engine; MemoryRuntime serves tests and the demo binary.
type Runtime interface {
	// NewTab opens an invisible tab loading rawURL.
	NewTab(ctx context.Context, rawURL string) (Tab, error)
}
