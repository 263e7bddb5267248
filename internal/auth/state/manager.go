// Package state owns the authentication state machine. The Manager is
// the single writer: coordinators route every transition through it,
// and everything else only reads.
package state

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"authbridge/internal/auth/models"
	"authbridge/internal/platform/dispatch"
)

// Observer receives typed state changes, delivered in transition order
// on the UI-affinity queue.
type Observer func(current, previous models.State)

// LegacyObserver receives the coarse broadcast tags kept for consumers
// that have not migrated to the typed observer protocol.
type LegacyObserver func(action models.LegacyAction)

// Subscription is the registration handle returned by Subscribe. Cancel
// unregisters deterministically; there is no reliance on finalizer or
// garbage-collection timing to prune observers.
type Subscription struct {
	id     uuid.UUID
	cancel func(uuid.UUID)
	once   sync.Once
}

// Cancel removes the observer. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() { s.cancel(s.id) })
}

// Manager is the single source of truth for authentication state.
type Manager struct {
	mu      sync.Mutex
	current models.State
	typed   map[uuid.UUID]Observer
	legacy  map[uuid.UUID]LegacyObserver

	queue  *dispatch.Queue
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New constructs a Manager in the idle state. Observer callbacks are
// delivered on queue so UI-facing consumers never run off the
// UI-affinity context.
func New(queue *dispatch.Queue, opts ...Option) *Manager {
	m := &Manager{
		current: models.Idle(),
		typed:   make(map[uuid.UUID]Observer),
		legacy:  make(map[uuid.UUID]LegacyObserver),
		queue:   queue,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Subscribe registers a typed observer and returns its handle.
func (m *Manager) Subscribe(fn Observer) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.typed[id] = fn
	return &Subscription{id: id, cancel: m.unsubscribeTyped}
}

// SubscribeLegacy registers a legacy broadcast observer. The payload is
// a pure projection of the typed state, so both channels always agree.
func (m *Manager) SubscribeLegacy(fn LegacyObserver) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.legacy[id] = fn
	return &Subscription{id: id, cancel: m.unsubscribeLegacy}
}

func (m *Manager) unsubscribeTyped(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.typed, id)
}

func (m *Manager) unsubscribeLegacy(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.legacy, id)
}

// State transitions. Each performs exactly one transition and notifies
// observers once, after the transition is committed.

// BeginAuthentication transitions to authenticating.
func (m *Manager) BeginAuthentication() {
	m.update(models.Authenticating())
}

// CompleteAuthentication transitions to authenticated with user data.
func (m *Manager) CompleteAuthentication(user *models.AuthUser) {
	m.update(models.Authenticated(user))
}

// FailAuthentication transitions to the failed state.
func (m *Manager) FailAuthentication(err error) {
	m.update(models.AuthenticationFailed(err))
}

// BeginLogout transitions to logging out.
func (m *Manager) BeginLogout() {
	m.update(models.LoggingOut())
}

// CompleteLogout transitions to logged out.
func (m *Manager) CompleteLogout() {
	m.update(models.LoggedOut())
}

// Reset returns to idle.
func (m *Manager) Reset() {
	m.update(models.Idle())
}

// Queries.

// Current returns the last committed state.
func (m *Manager) Current() models.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// IsAuthenticated reports whether the current phase is authenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.Current().Phase == models.PhaseAuthenticated
}

// IsAuthenticating reports whether authentication is in progress.
func (m *Manager) IsAuthenticating() bool {
	return m.Current().Phase == models.PhaseAuthenticating
}

// IsLoggingOut reports whether logout is in progress.
func (m *Manager) IsLoggingOut() bool {
	return m.Current().Phase == models.PhaseLoggingOut
}

// CurrentUser returns the authenticated user, if any.
func (m *Manager) CurrentUser() *models.AuthUser {
	return m.Current().User
}

func (m *Manager) update(next models.State) {
	m.mu.Lock()
	previous := m.current
	m.current = next

	typed := make([]Observer, 0, len(m.typed))
	for _, fn := range m.typed {
		typed = append(typed, fn)
	}
	var legacy []LegacyObserver
	action, broadcast := models.LegacyActionFor(next)
	if broadcast {
		legacy = make([]LegacyObserver, 0, len(m.legacy))
		for _, fn := range m.legacy {
			legacy = append(legacy, fn)
		}
	}
	m.mu.Unlock()

	m.logger.Info("auth state changed",
		"previous", previous.Phase.String(),
		"current", next.Phase.String(),
	)

	// A single queue task per transition keeps delivery ordered across
	// transitions and atomic across both observer channels.
	m.queue.Async(func() {
		for _, fn := range typed {
			fn(next, previous)
		}
		if broadcast {
			for _, fn := range legacy {
				fn(action)
			}
		}
	})
}
