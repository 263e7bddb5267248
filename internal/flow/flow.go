// Package flow orchestrates login and logout: it sequences the native
// account operations, the state machine transitions and the invisible
// tab sessions that push the session to the web surface.
package flow

import (
	"context"
	"log/slog"
	"time"

	"authbridge/internal/auth/metrics"
	"authbridge/internal/auth/models"
	"authbridge/internal/platform/tracer"
	"authbridge/internal/webruntime"
)

// AuthAccount is the slice of the account service the coordinators use.
type AuthAccount interface {
	Login(ctx context.Context) (*models.AuthUser, error)
	Logout(ctx context.Context) error
	FetchSessionTransferToken(ctx context.Context) (*models.SSOCredentials, error)
	SessionTokenCookie(sso *models.SSOCredentials) *webruntime.Cookie
	IsLoggedIn() bool
}

// Callbacks notify the caller about flow progress. All callbacks are
// optional and are delivered on the dispatch queue. OnError and
// OnFlowCompleted fire at most once per flow.
type Callbacks struct {
	// OnNativeAuthCompleted fires when native authentication succeeded,
	// before any web session work starts.
	OnNativeAuthCompleted func()

	// OnFlowCompleted fires when the whole flow is over, web sessions
	// included.
	OnFlowCompleted func(success bool)

	// OnError fires when the flow failed. OnFlowCompleted(false) still
	// follows.
	OnError func(err error)
}

// Config carries the flow-level settings shared by both coordinators.
type Config struct {
	LoginURLs      []string
	LogoutURLs     []string
	SessionTimeout time.Duration
	LogoutFallback time.Duration
}

// DefaultLogoutFallback bounds a logout flow whose tabs never close.
const DefaultLogoutFallback = 15 * time.Second

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

// Option configures a coordinator.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracer == nil {
		o.tracer = tracer.NewNoop()
	}
	return o
}
