// Package provider wraps the OAuth/OIDC SDK boundary. The rest of the
// bridge talks to these interfaces only; errors crossing them carry
// autherrors codes instead of SDK types.
package provider

import (
	"context"

	"authbridge/internal/auth/models"
)

// Authorizer runs the interactive part of the authorization-code flow:
// it presents authURL to the user and returns the code delivered to the
// redirect URL. Implementations return ctx.Err() when dismissed.
type Authorizer interface {
	Authorize(ctx context.Context, authURL string) (code string, err error)
}

// Provider is the native authentication boundary.
type Provider interface {
	// StartAuth runs the interactive login and returns fresh credentials.
	// Dismissal surfaces as CodeUserCancelled.
	StartAuth(ctx context.Context) (*models.Credentials, error)

	// ClearSession terminates the provider-side browser session.
	ClearSession(ctx context.Context) error

	StoreCredentials(c *models.Credentials) error
	RetrieveCredentials() (*models.Credentials, error)
	ClearCredentials() error

	// CanRenewCredentials reports whether a refresh token is on hand.
	CanRenewCredentials() bool

	// RenewCredentials exchanges the stored refresh token for fresh
	// credentials and persists them.
	RenewCredentials(ctx context.Context) (*models.Credentials, error)
}

// SSOProvider extends Provider with the native-to-web session transfer
// exchange.
type SSOProvider interface {
	Provider

	// SSOCredentials mints a short-lived session-transfer token from the
	// stored refresh token. The result is never persisted.
	SSOCredentials(ctx context.Context) (*models.SSOCredentials, error)
}
