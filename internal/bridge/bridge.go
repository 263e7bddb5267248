// Package bridge is the public face of the authentication bridge: a
// small facade that starts login and logout flows and hands back a
// chainable Flow for callbacks.
package bridge

import (
	"context"
	"log/slog"

	"authbridge/internal/auth/metrics"
	"authbridge/internal/auth/state"
	"authbridge/internal/flow"
	"authbridge/internal/platform/dispatch"
	"authbridge/internal/platform/tracer"
	"authbridge/internal/webruntime"
)

// Bridge wires the account service, the state machine and the web
// runtime into one entry point. Construct it once at startup and share
// it; each Login/Logout call spawns its own single-use coordinator.
type Bridge struct {
	account  flow.AuthAccount
	state    *state.Manager
	runtime  webruntime.Runtime
	registry *webruntime.Registry
	queue    *dispatch.Queue
	cfg      flow.Config

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

// Option configures the Bridge.
type Option func(*Bridge)

func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(b *Bridge) {
		b.tracer = t
	}
}

// New constructs the bridge.
func New(account flow.AuthAccount, st *state.Manager, runtime webruntime.Runtime, queue *dispatch.Queue, cfg flow.Config, opts ...Option) *Bridge {
	b := &Bridge{
		account:  account,
		state:    st,
		runtime:  runtime,
		registry: webruntime.NewRegistry(),
		queue:    queue,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.tracer == nil {
		b.tracer = tracer.NewNoop()
	}
	return b
}

// Login starts a login flow and returns its chainable handle.
func (b *Bridge) Login(ctx context.Context) *Flow {
	f := newFlow(b.queue)
	coordinator := flow.NewLogin(b.account, b.state, b.runtime, b.registry, b.queue, b.cfg,
		b.flowCallbacks(f), b.flowOptions()...)
	go coordinator.Start(ctx)
	return f
}

// Logout starts a logout flow and returns its chainable handle.
func (b *Bridge) Logout(ctx context.Context) *Flow {
	f := newFlow(b.queue)
	coordinator := flow.NewLogout(b.account, b.state, b.runtime, b.registry, b.queue, b.cfg,
		b.flowCallbacks(f), b.flowOptions()...)
	go coordinator.Start(ctx)
	return f
}

// IsLoggedIn reports whether a user is currently authenticated.
func (b *Bridge) IsLoggedIn() bool {
	return b.account.IsLoggedIn()
}

// State exposes the state machine for observers.
func (b *Bridge) State() *state.Manager {
	return b.state
}

func (b *Bridge) flowCallbacks(f *Flow) flow.Callbacks {
	return flow.Callbacks{
		OnNativeAuthCompleted: f.emitNativeAuth,
		OnFlowCompleted:       f.emitCompleted,
		OnError:               f.emitError,
	}
}

func (b *Bridge) flowOptions() []flow.Option {
	return []flow.Option{
		flow.WithLogger(b.logger),
		flow.WithMetrics(b.metrics),
		flow.WithTracer(b.tracer),
	}
}
