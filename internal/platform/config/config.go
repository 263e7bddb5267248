package config

import (
	"os"
	"strings"
	"time"
)

// Bridge captures authentication-bridge level configuration.
type Bridge struct {
	// OAuth provider settings.
	IssuerURL   string
	ClientID    string
	RedirectURL string
	Scopes      []string

	// Web runtime settings.
	RootURL    string
	LoginURLs  []string
	LogoutURLs []string

	// Session-transfer cookie settings.
	CookieName   string
	CookieDomain string

	// Flow timing.
	SessionTimeout    time.Duration
	LogoutFallback    time.Duration
	DelayedCompletion time.Duration

	// Keychain-backed credential storage.
	KeychainDir     string
	KeychainSecret  string
	KeychainService string

	// Demo binary surface.
	MetricsAddr string
}

// Defaults mirroring the web runtime contract: a 10s per-tab timeout and
// a 15s logout fallback in case tabs never close.
const (
	DefaultSessionTimeout = 10 * time.Second
	DefaultLogoutFallback = 15 * time.Second

	// DefaultCookieName is the session-transfer cookie consumed by the
	// embedded web runtime.
	DefaultCookieName = "auth0_session_transfer_token"

	// DefaultKeychainService keys credential blobs in secure storage.
	DefaultKeychainService = "org.ecosia.authbridge.credentials"
)

// FromEnv builds a Bridge config from environment variables so main stays lean.
func FromEnv() Bridge {
	root := getenv("AUTHBRIDGE_ROOT_URL", "https://www.ecosia.org")

	cfg := Bridge{
		IssuerURL:         getenv("AUTHBRIDGE_ISSUER_URL", "https://login.ecosia.org"),
		ClientID:          os.Getenv("AUTHBRIDGE_CLIENT_ID"),
		RedirectURL:       getenv("AUTHBRIDGE_REDIRECT_URL", "ecosia://auth/callback"),
		Scopes:            []string{"openid", "profile", "email", "offline_access"},
		RootURL:           root,
		LoginURLs:         splitURLs(getenv("AUTHBRIDGE_LOGIN_URLS", root+"/accounts/sign-up")),
		LogoutURLs:        splitURLs(getenv("AUTHBRIDGE_LOGOUT_URLS", root+"/logout")),
		CookieName:        getenv("AUTHBRIDGE_COOKIE_NAME", DefaultCookieName),
		CookieDomain:      getenv("AUTHBRIDGE_COOKIE_DOMAIN", "login.ecosia.org"),
		SessionTimeout:    durationEnv("AUTHBRIDGE_SESSION_TIMEOUT", DefaultSessionTimeout),
		LogoutFallback:    durationEnv("AUTHBRIDGE_LOGOUT_FALLBACK", DefaultLogoutFallback),
		DelayedCompletion: durationEnv("AUTHBRIDGE_DELAYED_COMPLETION", 0),
		KeychainDir:       getenv("AUTHBRIDGE_KEYCHAIN_DIR", ""),
		KeychainSecret:    getenv("AUTHBRIDGE_KEYCHAIN_SECRET", "dev-secret-key-change-in-production"),
		KeychainService:   getenv("AUTHBRIDGE_KEYCHAIN_SERVICE", DefaultKeychainService),
		MetricsAddr:       getenv("AUTHBRIDGE_METRICS_ADDR", ":9464"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitURLs(v string) []string {
	parts := strings.Split(v, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
