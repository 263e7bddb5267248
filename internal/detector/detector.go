// Package detector watches navigation URLs for the web surface's own
// sign-in and sign-out pages and triggers the matching native flow, so
// a user who authenticates in the browser ends up authenticated
// natively too.
package detector

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"authbridge/internal/bridge"
)

// URLKind classifies a navigation target.
type URLKind int

const (
	KindNone URLKind = iota
	KindSignIn
	KindSignUp
	KindSignOut
	KindProfile
)

func (k URLKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSignIn:
		return "sign_in"
	case KindSignUp:
		return "sign_up"
	case KindSignOut:
		return "sign_out"
	case KindProfile:
		return "profile"
	default:
		return "none"
	}
}

var (
	signInPaths = map[string]struct{}{
		"/login":      {},
		"/signin":     {},
		"/auth/login": {},
	}
	signOutPaths = map[string]struct{}{
		"/accounts/sign-out": {},
		"/logout":            {},
		"/signout":           {},
		"/auth/logout":       {},
	}
)

// Classify maps a path onto its URLKind. Paths are matched exactly,
// after trailing-slash normalization.
func Classify(path string) URLKind {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return KindNone
	}
	switch path {
	case "/accounts/sign-up":
		return KindSignUp
	case "/accounts/profile":
		return KindProfile
	}
	if _, ok := signInPaths[path]; ok {
		return KindSignIn
	}
	if _, ok := signOutPaths[path]; ok {
		return KindSignOut
	}
	return KindNone
}

// AuthStarter is the slice of the bridge facade the detector drives.
type AuthStarter interface {
	Login(ctx context.Context) *bridge.Flow
	Logout(ctx context.Context) *bridge.Flow
	IsLoggedIn() bool
}

// Detector inspects navigations and starts native flows. At most one
// detector-triggered flow runs at a time; further matches are ignored
// until it finishes.
type Detector struct {
	bridge   AuthStarter
	rootHost string
	logger   *slog.Logger

	inFlight atomic.Bool
}

// Option configures the Detector.
type Option func(*Detector)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// New constructs a detector scoped to rootURL's host.
func New(b AuthStarter, rootURL string, opts ...Option) *Detector {
	d := &Detector{bridge: b, rootHost: hostOf(rootURL)}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Observe classifies rawURL and starts the matching flow when the
// navigation is an auth page on our own host. The classification is
// returned either way.
func (d *Detector) Observe(ctx context.Context, rawURL string) URLKind {
	u, err := url.Parse(rawURL)
	if err != nil || !d.sameHost(u) {
		return KindNone
	}
	kind := Classify(u.Path)

	switch kind {
	case KindSignIn, KindSignUp:
		if d.bridge.IsLoggedIn() {
			return kind
		}
		if !d.inFlight.CompareAndSwap(false, true) {
			d.logger.Info("auth flow already in flight, ignoring navigation", "kind", kind.String())
			return kind
		}
		d.logger.Info("web sign-in detected, starting native login", "kind", kind.String())
		d.bridge.Login(ctx).OnAuthFlowCompleted(func(bool) {
			d.inFlight.Store(false)
		})
	case KindSignOut:
		if !d.bridge.IsLoggedIn() {
			return kind
		}
		if !d.inFlight.CompareAndSwap(false, true) {
			d.logger.Info("auth flow already in flight, ignoring navigation", "kind", kind.String())
			return kind
		}
		d.logger.Info("web sign-out detected, starting native logout")
		d.bridge.Logout(ctx).OnAuthFlowCompleted(func(bool) {
			d.inFlight.Store(false)
		})
	}
	return kind
}

func (d *Detector) sameHost(u *url.URL) bool {
	return hostsEqual(u.Hostname(), d.rootHost)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// hostsEqual treats www as transparent: www.ecosia.org and ecosia.org
// are the same surface.
func hostsEqual(a, b string) bool {
	return strings.TrimPrefix(a, "www.") == strings.TrimPrefix(b, "www.")
}
