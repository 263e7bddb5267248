package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"authbridge/internal/auth/credentials"
	"authbridge/internal/auth/models"
	"authbridge/pkg/autherrors"
)

// sessionTransferTokenType is the requested token type for the
// native-to-web session transfer exchange on /oauth/token.
const sessionTransferTokenType = "urn:ietf:params:oauth:token-type:session_transfer_token"

// OIDC implements SSOProvider against an OIDC issuer using the
// authorization-code flow with PKCE.
type OIDC struct {
	oauth      oauth2.Config
	issuerURL  string
	authorizer Authorizer
	store      *credentials.Store
	httpClient *http.Client
	logger     *slog.Logger
}

// OIDCOption configures the OIDC provider.
type OIDCOption func(*OIDC)

func WithLogger(logger *slog.Logger) OIDCOption {
	return func(p *OIDC) {
		p.logger = logger
	}
}

func WithHTTPClient(client *http.Client) OIDCOption {
	return func(p *OIDC) {
		p.httpClient = client
	}
}

// NewOIDC constructs a provider for the given issuer. The token and
// authorization endpoints follow the issuer's conventional layout.
func NewOIDC(issuerURL, clientID, redirectURL string, scopes []string, authorizer Authorizer, store *credentials.Store, opts ...OIDCOption) (*OIDC, error) {
	if issuerURL == "" || clientID == "" {
		return nil, autherrors.New(autherrors.CodeConfiguration, "issuer URL and client ID are required")
	}
	issuer := strings.TrimRight(issuerURL, "/")

	p := &OIDC{
		oauth: oauth2.Config{
			ClientID:    clientID,
			RedirectURL: redirectURL,
			Scopes:      scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  issuer + "/authorize",
				TokenURL: issuer + "/oauth/token",
			},
		},
		issuerURL:  issuer,
		authorizer: authorizer,
		store:      store,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.httpClient == nil {
		p.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return p, nil
}

// StartAuth runs the interactive authorization-code flow.
func (p *OIDC) StartAuth(ctx context.Context) (*models.Credentials, error) {
	ctx = p.withHTTPClient(ctx)
	verifier := oauth2.GenerateVerifier()
	state := oauth2.GenerateVerifier()
	authURL := p.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	code, err := p.authorizer.Authorize(ctx, authURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, autherrors.Wrap(err, autherrors.CodeUserCancelled, "authentication prompt dismissed")
		}
		return nil, autherrors.Wrap(err, autherrors.CodeAuthenticationFailed, "interactive authorization failed")
	}

	token, err := p.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeAuthenticationFailed, "token exchange failed")
	}
	creds := credentialsFromToken(token)
	p.logger.Info("native authentication completed",
		"has_refresh_token", creds.RefreshToken != "",
		"expires_at", creds.ExpiresAt,
	)
	return creds, nil
}

// ClearSession calls the issuer's logout endpoint to terminate the
// provider-side browser session.
func (p *OIDC) ClearSession(ctx context.Context) error {
	logoutURL := fmt.Sprintf("%s/v2/logout?client_id=%s", p.issuerURL, url.QueryEscape(p.oauth.ClientID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoutURL, nil)
	if err != nil {
		return autherrors.Wrap(err, autherrors.CodeSessionClearing, "could not build logout request")
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return autherrors.Wrap(err, autherrors.CodeSessionClearing, "provider logout request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return autherrors.New(autherrors.CodeSessionClearing, fmt.Sprintf("provider logout returned status %d", resp.StatusCode))
	}
	p.logger.Info("provider session cleared")
	return nil
}

func (p *OIDC) StoreCredentials(c *models.Credentials) error {
	return p.store.Save(c)
}

func (p *OIDC) RetrieveCredentials() (*models.Credentials, error) {
	return p.store.Load()
}

func (p *OIDC) ClearCredentials() error {
	return p.store.Clear()
}

// CanRenewCredentials reports whether stored credentials carry a
// refresh token.
func (p *OIDC) CanRenewCredentials() bool {
	creds, err := p.store.Load()
	return err == nil && creds.RefreshToken != ""
}

// RenewCredentials exchanges the stored refresh token for fresh tokens
// and persists the result.
func (p *OIDC) RenewCredentials(ctx context.Context) (*models.Credentials, error) {
	ctx = p.withHTTPClient(ctx)
	stored, err := p.store.Load()
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeCredentialsRenewal, "no stored credentials to renew")
	}
	if stored.RefreshToken == "" {
		return nil, autherrors.New(autherrors.CodeCredentialsRenewal, "stored credentials carry no refresh token")
	}

	// An already-expired token forces the source to hit the refresh grant.
	seed := &oauth2.Token{RefreshToken: stored.RefreshToken, Expiry: time.Now().Add(-time.Minute)}
	token, err := p.oauth.TokenSource(ctx, seed).Token()
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeCredentialsRenewal, "refresh token exchange failed")
	}

	creds := credentialsFromToken(token)
	if creds.RefreshToken == "" {
		creds.RefreshToken = stored.RefreshToken
	}
	if err := p.store.Save(creds); err != nil {
		return nil, err
	}
	p.logger.Info("credentials renewed", "expires_at", creds.ExpiresAt)
	return creds, nil
}

// SSOCredentials exchanges the stored refresh token for a session
// transfer token on the issuer's token endpoint.
func (p *OIDC) SSOCredentials(ctx context.Context) (*models.SSOCredentials, error) {
	stored, err := p.store.Load()
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeAuthenticationFailed, "no stored credentials for session transfer")
	}
	if stored.RefreshToken == "" {
		return nil, autherrors.New(autherrors.CodeAuthenticationFailed, "stored credentials carry no refresh token")
	}

	form := url.Values{
		"grant_type":           {"refresh_token"},
		"client_id":            {p.oauth.ClientID},
		"refresh_token":        {stored.RefreshToken},
		"requested_token_type": {sessionTransferTokenType},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.oauth.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeNetwork, "could not build session transfer request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeNetwork, "session transfer request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, autherrors.New(autherrors.CodeAuthenticationFailed, fmt.Sprintf("session transfer exchange returned status %d", resp.StatusCode))
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, autherrors.Wrap(err, autherrors.CodeAuthenticationFailed, "could not decode session transfer response")
	}
	if body.AccessToken == "" {
		return nil, autherrors.New(autherrors.CodeAuthenticationFailed, "session transfer response carried no token")
	}

	p.logger.Info("session transfer token minted", "expires_in_seconds", body.ExpiresIn)
	return &models.SSOCredentials{
		SessionTransferToken: body.AccessToken,
		ExpiresAt:            time.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}, nil
}

// withHTTPClient routes oauth2 SDK calls through the configured client.
func (p *OIDC) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func credentialsFromToken(t *oauth2.Token) *models.Credentials {
	idToken, _ := t.Extra("id_token").(string)
	scope, _ := t.Extra("scope").(string)
	return &models.Credentials{
		IDToken:      idToken,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		ExpiresAt:    t.Expiry,
		Scope:        scope,
	}
}

var _ SSOProvider = (*OIDC)(nil)
