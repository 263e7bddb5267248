// Package service holds the native authentication account: the
// provider-facing operations plus the in-memory view of who is logged
// in. Coordinators call into it; it never drives state transitions or
// tabs itself.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"authbridge/internal/auth/credentials"
	"authbridge/internal/auth/metrics"
	"authbridge/internal/auth/models"
	"authbridge/internal/auth/provider"
	"authbridge/internal/platform/tracer"
	"authbridge/internal/webruntime"
	"authbridge/pkg/autherrors"
)

// Service is the account facade over the auth provider.
type Service struct {
	provider provider.SSOProvider
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer

	cookieName   string
	cookieDomain string

	mu   sync.RWMutex
	user *models.AuthUser
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithCookie(name, domain string) Option {
	return func(s *Service) {
		s.cookieName = name
		s.cookieDomain = domain
	}
}

// New constructs the account service around an SSO-capable provider.
func New(p provider.SSOProvider, opts ...Option) *Service {
	s := &Service{
		provider:   p,
		cookieName: "auth0_session_transfer_token",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	return s
}

// Login runs the interactive native login, persists the credentials and
// records the authenticated user.
func (s *Service) Login(ctx context.Context) (*models.AuthUser, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanNativeAuth)
	var err error
	defer func() { span.End(err) }()

	creds, err := s.provider.StartAuth(ctx)
	if err != nil {
		s.logger.Error("native login failed", "error", err, "code", string(autherrors.CodeOf(err)))
		return nil, err
	}
	if err = s.provider.StoreCredentials(creds); err != nil {
		s.logger.Error("could not persist credentials after login", "error", err)
		return nil, err
	}

	user := userFromCredentials(creds)
	s.setUser(user)
	s.logger.Info("user logged in", "subject", user.Profile.Subject)
	return user, nil
}

// Logout clears the provider session and the stored credentials. The
// local user is dropped even when the provider call fails; the caller
// decides whether to surface the error.
func (s *Service) Logout(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, tracer.SpanNativeAuth)
	sessionErr := s.provider.ClearSession(ctx)
	credsErr := s.provider.ClearCredentials()
	s.setUser(nil)

	err := errors.Join(sessionErr, credsErr)
	span.End(err)
	if err != nil {
		s.logger.Error("logout left residue", "error", err)
		return err
	}
	s.logger.Info("user logged out")
	return nil
}

// RestoreSession silently restores the account from stored credentials
// at startup. Expired credentials are renewed when a refresh token is on
// hand. Reports whether a user session was restored.
func (s *Service) RestoreSession(ctx context.Context) (bool, error) {
	creds, err := s.provider.RetrieveCredentials()
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !creds.Valid() {
		if !s.provider.CanRenewCredentials() {
			s.logger.Info("stored credentials expired and not renewable")
			return false, nil
		}
		if creds, err = s.provider.RenewCredentials(ctx); err != nil {
			return false, err
		}
		if s.metrics != nil {
			s.metrics.CredentialsRenewed.Inc()
		}
	}

	s.setUser(userFromCredentials(creds))
	if s.metrics != nil {
		s.metrics.CredentialsRestored.Inc()
	}
	s.logger.Info("session restored from stored credentials")
	return true, nil
}

// RenewIfNeeded refreshes credentials that are about to expire. A still
// valid token is left alone.
func (s *Service) RenewIfNeeded(ctx context.Context) error {
	creds, err := s.provider.RetrieveCredentials()
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return nil
		}
		return err
	}
	if creds.Valid() {
		return nil
	}
	if !s.provider.CanRenewCredentials() {
		return autherrors.New(autherrors.CodeCredentialsRenewal, "credentials expired with no refresh token")
	}

	renewed, err := s.provider.RenewCredentials(ctx)
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.CredentialsRenewed.Inc()
	}
	s.setUser(userFromCredentials(renewed))
	return nil
}

// FetchSessionTransferToken mints the short-lived web handoff token.
func (s *Service) FetchSessionTransferToken(ctx context.Context) (*models.SSOCredentials, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSessionTransfer)
	sso, err := s.provider.SSOCredentials(ctx)
	span.End(err)
	if err != nil {
		s.logger.Warn("session transfer token unavailable", "error", err)
		return nil, err
	}
	s.logger.Info("session transfer token fetched", "token_hash", tracer.HashToken(sso.SessionTransferToken))
	return sso, nil
}

// SessionTokenCookie shapes SSO credentials into the cookie the web
// runtime expects. A nil input yields a nil cookie, which downstream
// treats as "proceed without handoff".
func (s *Service) SessionTokenCookie(sso *models.SSOCredentials) *webruntime.Cookie {
	if sso == nil || sso.SessionTransferToken == "" {
		return nil
	}
	return &webruntime.Cookie{
		Name:     s.cookieName,
		Value:    sso.SessionTransferToken,
		Domain:   s.cookieDomain,
		Path:     "/",
		Expires:  expiryOrDefault(sso.ExpiresAt),
		Secure:   true,
		HTTPOnly: true,
	}
}

// IsLoggedIn reports whether a user is currently authenticated.
func (s *Service) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns the authenticated user, or nil.
func (s *Service) CurrentUser() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IDToken returns the current id token, or empty when logged out.
func (s *Service) IDToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.IDToken
}

// AccessToken returns the current access token, or empty when logged out.
func (s *Service) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.AccessToken
}

func (s *Service) setUser(u *models.AuthUser) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func userFromCredentials(c *models.Credentials) *models.AuthUser {
	return &models.AuthUser{
		IDToken:     c.IDToken,
		AccessToken: c.AccessToken,
		Profile:     provider.ProfileFromIDToken(c.IDToken),
	}
}

// expiryOrDefault guards against providers that omit expiry on transfer
// tokens; the cookie then lives for one minute.
func expiryOrDefault(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().Add(time.Minute)
	}
	return t
}
