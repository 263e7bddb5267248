package webruntime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authbridge/internal/auth/metrics"
	"authbridge/internal/platform/dispatch"
	"authbridge/pkg/autherrors"
)

// CompletionCause records how an invisible tab session ended.
type CompletionCause string

const (
	// CauseClosed means the tab closed on its own after finishing its work.
	CauseClosed CompletionCause = "closed"
	// CauseTimeout means the per-tab deadline expired and the session
	// closed the tab itself.
	CauseTimeout CompletionCause = "timeout"
	// CauseForced means an outer fallback gave up waiting.
	CauseForced CompletionCause = "forced"
)

// DefaultSessionTimeout bounds how long a session waits for its tab to
// close before treating the handoff as done.
const DefaultSessionTimeout = 10 * time.Second

// Session owns one invisible tab for the duration of a session handoff:
// create the tab, inject the session-transfer cookie, then wait for the
// tab to close or the deadline to pass. The completion callback fires
// exactly once regardless of how close and timeout race.
type Session struct {
	tab      Tab
	queue    *dispatch.Queue
	registry *Registry
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics

	mu         sync.Mutex
	completed  bool
	timer      *dispatch.Timer
	onComplete func(CompletionCause)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.timeout = d
	}
}

func WithRegistry(r *Registry) SessionOption {
	return func(s *Session) {
		s.registry = r
	}
}

func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithSessionMetrics(m *metrics.Metrics) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession opens an invisible tab loading rawURL. Creation failure is
// reported as CodeInvisibleTabCreation so callers can run compensating
// cleanup.
func NewSession(ctx context.Context, runtime Runtime, queue *dispatch.Queue, rawURL string, opts ...SessionOption) (*Session, error) {
	s := &Session{
		queue:   queue,
		timeout: DefaultSessionTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	tab, err := runtime.NewTab(ctx, rawURL)
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeInvisibleTabCreation, "could not create invisible tab")
	}
	s.tab = tab
	if s.registry != nil {
		s.registry.Add(tab)
	}
	if s.metrics != nil {
		s.metrics.TabSessionsCreated.Inc()
	}
	s.logger.Info("invisible tab session created", "tab_id", tab.ID(), "url", rawURL)
	return s, nil
}

// Tab exposes the underlying tab, mainly for tests.
func (s *Session) Tab() Tab {
	return s.tab
}

// SetupSessionCookies injects the session-transfer cookie into the tab.
// A nil cookie is not an error: the tab still loads and the web side
// simply sees a logged-out visitor.
func (s *Session) SetupSessionCookies(ctx context.Context, cookie *Cookie) error {
	if cookie == nil {
		s.logger.Info("no session transfer cookie available, tab proceeds without handoff", "tab_id", s.tab.ID())
		return nil
	}
	if err := s.tab.SetCookie(ctx, *cookie); err != nil {
		return autherrors.Wrap(err, autherrors.CodeNetwork, "could not inject session cookie")
	}
	s.logger.Info("session cookie injected", "tab_id", s.tab.ID(), "cookie_name", cookie.Name)
	return nil
}

// StartMonitoring arms the deadline and watches for tab closure.
// onComplete is delivered on the dispatch queue exactly once.
func (s *Session) StartMonitoring(onComplete func(CompletionCause)) {
	s.mu.Lock()
	s.onComplete = onComplete
	s.timer = s.queue.AfterFunc(s.timeout, func() {
		s.complete(CauseTimeout, true)
	})
	s.mu.Unlock()

	s.tab.OnClose(func() {
		s.complete(CauseClosed, false)
	})
}

// ForceComplete ends the session early, closing the tab. Used by the
// logout fallback when tabs never close on their own.
func (s *Session) ForceComplete() {
	s.complete(CauseForced, true)
}

func (s *Session) complete(cause CompletionCause, closeTab bool) {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	timer := s.timer
	handler := s.onComplete
	s.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if closeTab {
		if err := s.tab.Close(); err != nil {
			s.logger.Warn("could not close invisible tab", "tab_id", s.tab.ID(), "error", err)
		}
	}
	if s.registry != nil {
		s.registry.Remove(s.tab.ID())
	}
	if s.metrics != nil {
		s.metrics.TabSessionCompletions.WithLabelValues(string(cause)).Inc()
	}
	s.logger.Info("invisible tab session completed", "tab_id", s.tab.ID(), "cause", string(cause))

	if handler != nil {
		s.queue.Async(func() {
			handler(cause)
		})
	}
}
