package models

import (
	"fmt"
	"time"
)

// Phase enumerates the authentication states. Exactly one phase is
// active at a time; transitions happen only through the state manager.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAuthenticating
	PhaseAuthenticated
	PhaseAuthenticationFailed
	PhaseLoggingOut
	PhaseLoggedOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseAuthenticationFailed:
		return "authentication_failed"
	case PhaseLoggingOut:
		return "logging_out"
	case PhaseLoggedOut:
		return "logged_out"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the authentication state value. User is set only for
// PhaseAuthenticated; Err only for PhaseAuthenticationFailed.
type State struct {
	Phase Phase
	User  *AuthUser
	Err   error
}

func Idle() State           { return State{Phase: PhaseIdle} }
func Authenticating() State { return State{Phase: PhaseAuthenticating} }
func LoggingOut() State     { return State{Phase: PhaseLoggingOut} }
func LoggedOut() State      { return State{Phase: PhaseLoggedOut} }

func Authenticated(u *AuthUser) State {
	return State{Phase: PhaseAuthenticated, User: u}
}
func AuthenticationFailed(err error) State {
	return State{Phase: PhaseAuthenticationFailed, Err: err}
}

// AuthUser is the immutable value held inside the authenticated state.
// It is built from provider tokens on successful native authentication
// and discarded on logout.
type AuthUser struct {
	IDToken     string
	AccessToken string
	Profile     Profile
}

// Profile carries best-effort display claims decoded from the id token.
type Profile struct {
	Subject string
	Email   string
	Name    string
}

// Credentials are the provider-issued tokens persisted in the keychain
// store between launches.
type Credentials struct {
	IDToken      string    `json:"id_token"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scope        string    `json:"scope,omitempty"`
}

// credentialExpiryBuffer accounts for clock skew and in-flight requests
// when judging whether an access token is still usable.
const credentialExpiryBuffer = 60 * time.Second

// Valid reports whether the access token is present and not expired.
func (c *Credentials) Valid() bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	if c.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Add(credentialExpiryBuffer).Before(c.ExpiresAt)
}

// SSOCredentials is the short-lived session-transfer token minted after
// native login. It is never persisted; it lives for one flow only.
type SSOCredentials struct {
	SessionTransferToken string    `json:"session_transfer_token"`
	ExpiresAt            time.Time `json:"expires_at"`
}

// LegacyAction is the coarse tag broadcast for consumers that have not
// migrated to the typed observer protocol.
type LegacyAction string

const (
	ActionAuthStateLoaded      LegacyAction = "authStateLoaded"
	ActionUserLoggedIn         LegacyAction = "userLoggedIn"
	ActionUserLoggedOut        LegacyAction = "userLoggedOut"
	ActionAuthenticationFailed LegacyAction = "authenticationFailed"
)

// LegacyActionFor projects a typed state onto its legacy broadcast tag.
// States with no legacy equivalent (idle, loggingOut) return ok=false
// and must not be broadcast.
func LegacyActionFor(s State) (LegacyAction, bool) {
	switch s.Phase {
	case PhaseAuthenticating:
		return ActionAuthStateLoaded, true
	case PhaseAuthenticated:
		return ActionUserLoggedIn, true
	case PhaseAuthenticationFailed:
		return ActionAuthenticationFailed, true
	case PhaseLoggedOut:
		return ActionUserLoggedOut, true
	default:
		return "", false
	}
}
