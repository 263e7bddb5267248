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

// LogoutCoordinator runs one logout flow: native session teardown plus
// one invisible tab per logout URL so the web surface forgets the user
// too. Logout always reaches the logged-out state, whatever fails along
// the way. A coordinator is single-use.
type LogoutCoordinator struct {
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

// NewLogout constructs a single-use logout coordinator.
func NewLogout(account AuthAccount, st *state.Manager, runtime webruntime.Runtime, registry *webruntime.Registry, queue *dispatch.Queue, cfg Config, callbacks Callbacks, opts ...Option) *LogoutCoordinator {
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = webruntime.DefaultSessionTimeout
	}
	if cfg.LogoutFallback <= 0 {
		cfg.LogoutFallback = DefaultLogoutFallback
	}
	return &LogoutCoordinator{
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

// Start runs the flow and blocks until it reached logged-out.
func (c *LogoutCoordinator) Start(ctx context.Context) {
	started := time.Now()
	ctx, span := c.opts.tracer.Start(ctx, tracer.SpanLogoutFlow,
		tracer.String(tracer.AttrFlowID, c.flowID.String()),
		tracer.Int64(tracer.AttrTabCount, int64(len(c.cfg.LogoutURLs))),
	)
	if c.opts.metrics != nil {
		c.opts.metrics.LogoutsStarted.Inc()
	}
	c.opts.logger.Info("logout flow started", "flow_id", c.flowID)

	// Sweep invisible tabs left over from earlier flows before opening
	// our own, so stale sessions cannot outlive the account.
	if c.registry != nil && c.registry.Len() > 0 {
		c.opts.logger.Info("closing leftover invisible tabs", "flow_id", c.flowID, "count", c.registry.Len())
		if err := c.registry.CloseAll(); err != nil {
			c.opts.logger.Warn("leftover tab cleanup incomplete", "flow_id", c.flowID, "error", err)
		}
	}

	c.state.BeginLogout()

	// Native teardown failure never aborts the flow: the user asked to
	// leave, so locally they leave.
	flowErr := c.account.Logout(ctx)
	if flowErr != nil {
		c.opts.logger.Error("native logout failed, forcing local logout", "flow_id", c.flowID, "error", flowErr)
	}

	sessions := c.openSessions(ctx)
	if len(sessions) > 0 {
		fallback := c.queue.AfterFunc(c.cfg.LogoutFallback, func() {
			c.opts.logger.Warn("logout fallback fired, forcing session completion", "flow_id", c.flowID)
			for _, session := range sessions {
				session.ForceComplete()
			}
		})
		c.waitForSessions(sessions)
		fallback.Stop()
	}

	c.state.CompleteLogout()
	c.finish(span, started, flowErr)
}

// openSessions opens a tab per logout URL. Creation failures are logged
// and skipped; a broken tab must not keep the user logged in.
func (c *LogoutCoordinator) openSessions(ctx context.Context) []*webruntime.Session {
	sessions := make([]*webruntime.Session, 0, len(c.cfg.LogoutURLs))
	for _, rawURL := range c.cfg.LogoutURLs {
		session, err := webruntime.NewSession(ctx, c.runtime, c.queue, rawURL,
			webruntime.WithTimeout(c.cfg.SessionTimeout),
			webruntime.WithRegistry(c.registry),
			webruntime.WithSessionLogger(c.opts.logger),
			webruntime.WithSessionMetrics(c.opts.metrics),
		)
		if err != nil {
			c.opts.logger.Warn("skipping logout tab", "flow_id", c.flowID, "url", rawURL, "error", err)
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions
}

func (c *LogoutCoordinator) waitForSessions(sessions []*webruntime.Session) {
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

func (c *LogoutCoordinator) finish(span tracer.Span, started time.Time, err error) {
	c.once.Do(func() {
		success := err == nil
		span.SetAttributes(tracer.Bool(tracer.AttrFlowSuccess, success))
		if err != nil {
			span.SetAttributes(tracer.String(tracer.AttrErrorCode, string(autherrors.CodeOf(err))))
		}
		span.End(err)

		if c.opts.metrics != nil {
			c.opts.metrics.FlowDurationSeconds.WithLabelValues("logout").Observe(time.Since(started).Seconds())
			c.opts.metrics.LogoutsCompleted.Inc()
			if !success {
				c.opts.metrics.LogoutFailures.WithLabelValues(string(autherrors.CodeOf(err))).Inc()
			}
		}
		c.opts.logger.Info("logout flow finished", "flow_id", c.flowID, "success", success)

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
