package flow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"authbridge/internal/auth/state"
	"authbridge/internal/platform/dispatch"
	"authbridge/internal/platform/tracer"
	"authbridge/internal/webruntime"
	"authbridge/pkg/autherrors"
)

// LoginCoordinator runs one login flow end to end: native auth first,
// then one invisible tab per login URL carrying the session-transfer
// cookie. A coordinator is single-use.
type LoginCoordinator struct {
	account   AuthAccount
	state     *state.Manager
	runtime   webruntime.Runtime
	registry  *webruntime.Registry
	queue     *dispatch.Queue
	cfg       Config
	callbacks Callbacks
	opts      options

	flowID uuid.UUID
	once   sync.Once
}

// NewLogin constructs a single-use login coordinator.
func NewLogin(account AuthAccount, st *state.Manager, runtime webruntime.Runtime, registry *webruntime.Registry, queue *dispatch.Queue, cfg Config, callbacks Callbacks, opts ...Option) *LoginCoordinator {
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = webruntime.DefaultSessionTimeout
	}
	return &LoginCoordinator{
		account:   account,
		state:     st,
		runtime:   runtime,
		registry:  registry,
		queue:     queue,
		cfg:       cfg,
		callbacks: callbacks,
		opts:      buildOptions(opts),
		flowID:    uuid.New(),
	}
}

// Start runs the flow. It blocks until the flow reached a terminal
// state; callers that want fire-and-forget run it on a goroutine.
func (c *LoginCoordinator) Start(ctx context.Context) {
	started := time.Now()
	ctx, span := c.opts.tracer.Start(ctx, tracer.SpanLoginFlow,
		tracer.String(tracer.AttrFlowID, c.flowID.String()),
		tracer.Int64(tracer.AttrTabCount, int64(len(c.cfg.LoginURLs))),
	)
	if c.opts.metrics != nil {
		c.opts.metrics.LoginsStarted.Inc()
	}
	c.opts.logger.Info("login flow started", "flow_id", c.flowID)

	c.state.BeginAuthentication()

	user, err := c.account.Login(ctx)
	if err != nil {
		c.state.FailAuthentication(err)
		c.finish(span, started, err)
		return
	}
	c.state.CompleteAuthentication(user)
	c.notifyNativeAuthCompleted()

	cookie := c.sessionCookie(ctx)

	sessions, err := c.openSessions(ctx)
	if err != nil {
		c.compensate(ctx, err)
		c.finish(span, started, err)
		return
	}

	for _, session := range sessions {
		if cookieErr := session.SetupSessionCookies(ctx, cookie); cookieErr != nil {
			c.opts.logger.Warn("cookie injection failed, tab proceeds without handoff",
				"flow_id", c.flowID, "error", cookieErr)
		}
	}

	c.waitForSessions(sessions)
	c.finish(span, started, nil)
}

// sessionCookie fetches the session-transfer token and shapes it into a
// cookie. Failure is not fatal: the tabs still load, the web side just
// stays logged out.
func (c *LoginCoordinator) sessionCookie(ctx context.Context) *webruntime.Cookie {
	sso, err := c.account.FetchSessionTransferToken(ctx)
	if err != nil {
		c.opts.logger.Warn("continuing login without web session handoff", "flow_id", c.flowID, "error", err)
		return nil
	}
	return c.account.SessionTokenCookie(sso)
}

func (c *LoginCoordinator) openSessions(ctx context.Context) ([]*webruntime.Session, error) {
	sessions := make([]*webruntime.Session, 0, len(c.cfg.LoginURLs))
	for _, rawURL := range c.cfg.LoginURLs {
		session, err := webruntime.NewSession(ctx, c.runtime, c.queue, rawURL,
			webruntime.WithTimeout(c.cfg.SessionTimeout),
			webruntime.WithRegistry(c.registry),
			webruntime.WithSessionLogger(c.opts.logger),
			webruntime.WithSessionMetrics(c.opts.metrics),
		)
		if err != nil {
			for _, opened := range sessions {
				opened.ForceComplete()
			}
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (c *LoginCoordinator) waitForSessions(sessions []*webruntime.Session) {
	g := new(errgroup.Group)
	for _, session := range sessions {
		done := make(chan struct{})
		session.StartMonitoring(func(webruntime.CompletionCause) {
			close(done)
		})
		g.Go(func() error {
			<-done
			return nil
		})
	}
	g.Wait()
}

// compensate unwinds a half-finished login after tab creation failed:
// the native session is torn down again so native and web agree the
// user is not logged in.
func (c *LoginCoordinator) compensate(ctx context.Context, cause error) {
	c.opts.logger.Error("invisible tab creation failed, rolling back native login",
		"flow_id", c.flowID, "error", cause)
	if err := c.account.Logout(ctx); err != nil {
		c.opts.logger.Error("compensating logout failed", "flow_id", c.flowID, "error", err)
	}
	c.state.CompleteLogout()
	c.state.FailAuthentication(cause)
}

func (c *LoginCoordinator) notifyNativeAuthCompleted() {
	if c.callbacks.OnNativeAuthCompleted == nil {
		return
	}
	c.queue.Async(c.callbacks.OnNativeAuthCompleted)
}

// finish delivers the terminal callbacks at most once.
func (c *LoginCoordinator) finish(span tracer.Span, started time.Time, err error) {
	c.once.Do(func() {
		success := err == nil
		span.SetAttributes(tracer.Bool(tracer.AttrFlowSuccess, success))
		if err != nil {
			span.SetAttributes(tracer.String(tracer.AttrErrorCode, string(autherrors.CodeOf(err))))
		}
		span.End(err)

		if c.opts.metrics != nil {
			c.opts.metrics.FlowDurationSeconds.WithLabelValues("login").Observe(time.Since(started).Seconds())
			if success {
				c.opts.metrics.LoginsCompleted.Inc()
			} else {
				c.opts.metrics.LoginFailures.WithLabelValues(string(autherrors.CodeOf(err))).Inc()
			}
		}
		c.opts.logger.Info("login flow finished", "flow_id", c.flowID, "success", success)

		c.queue.Async(func() {
			if err != nil && c.callbacks.OnError != nil {
				c.callbacks.OnError(err)
			}
			if c.callbacks.OnFlowCompleted != nil {
				c.callbacks.OnFlowCompleted(success)
			}
		})
	})
}
