package webruntime

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// MemoryRuntime is an in-process Runtime for tests and the demo binary.
type MemoryRuntime struct {
	mu       sync.Mutex
	tabs     []*MemoryTab
	failNext error
}

// NewMemoryRuntime constructs an empty runtime.
func NewMemoryRuntime() *MemoryRuntime {
	return &MemoryRuntime{}
}

// FailNextWith makes the next NewTab call fail with err.
func (r *MemoryRuntime) FailNextWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNext = err
}

// NewTab opens a new in-memory tab.
func (r *MemoryRuntime) NewTab(ctx context.Context, rawURL string) (Tab, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tab := &MemoryTab{id: uuid.NewString(), url: rawURL}
	r.tabs = append(r.tabs, tab)
	return tab, nil
}

// Tabs returns every tab ever opened, closed ones included.
func (r *MemoryRuntime) Tabs() []*MemoryTab {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*MemoryTab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// MemoryTab is the tab implementation backing MemoryRuntime.
type MemoryTab struct {
	id  string
	url string

	mu      sync.Mutex
	cookies []Cookie
	closed  bool
	onClose []func()
}

func (t *MemoryTab) ID() string {
	return t.id
}

func (t *MemoryTab) URL() string {
	return t.url
}

func (t *MemoryTab) SetCookie(ctx context.Context, cookie Cookie) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return errors.New("tab is closed")
	}
	t.cookies = append(t.cookies, cookie)
	return nil
}

// Cookies returns the cookies injected so far.
func (t *MemoryTab) Cookies() []Cookie {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Cookie, len(t.cookies))
	copy(out, t.cookies)
	return out
}

func (t *MemoryTab) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	callbacks := t.onClose
	t.onClose = nil
	t.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return nil
}

// Closed reports whether the tab has been closed.
func (t *MemoryTab) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

func (t *MemoryTab) OnClose(fn func()) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		fn()
		return
	}
	t.onClose = append(t.onClose, fn)
	t.mu.Unlock()
}

var (
	_ Runtime = (*MemoryRuntime)(nil)
	_ Tab     = (*MemoryTab)(nil)
)
