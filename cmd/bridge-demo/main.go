package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"authbridge/internal/auth/credentials"
	"authbridge/internal/auth/metrics"
	"authbridge/internal/auth/models"
	"authbridge/internal/auth/provider"
	"authbridge/internal/auth/service"
	"authbridge/internal/auth/state"
	"authbridge/internal/bridge"
	"authbridge/internal/detector"
	"authbridge/internal/flow"
	"authbridge/internal/platform/config"
	"authbridge/internal/platform/dispatch"
	"authbridge/internal/platform/logger"
	"authbridge/internal/platform/tracer"
	"authbridge/internal/webruntime"
)

// main wires the whole bridge against the in-memory web runtime and
// walks one login/logout cycle, the way a host shell would drive it.
// Run lab/idp alongside to have a token endpoint to talk to.
func main() {
	cfg := config.FromEnv()
	if cfg.ClientID == "" {
		cfg.ClientID = "authbridge-demo"
	}
	log := logger.New()

	log.Info("initializing auth bridge demo",
		"issuer", cfg.IssuerURL,
		"root", cfg.RootURL,
	)

	m := metrics.New()
	go serveMetrics(cfg.MetricsAddr, log)

	keychainDir := cfg.KeychainDir
	if keychainDir == "" {
		keychainDir = filepath.Join(os.TempDir(), "authbridge-demo")
	}
	keychain, err := credentials.NewFileKeychain(keychainDir, []byte(cfg.KeychainSecret))
	if err != nil {
		log.Error("could not open keychain", "error", err)
		os.Exit(1)
	}
	store := credentials.NewStore(keychain, cfg.KeychainService, credentials.WithLogger(log))

	oidc, err := provider.NewOIDC(cfg.IssuerURL, cfg.ClientID, cfg.RedirectURL, cfg.Scopes,
		&headlessAuthorizer{}, store, provider.WithLogger(log))
	if err != nil {
		log.Error("could not build provider", "error", err)
		os.Exit(1)
	}

	queue := dispatch.New()
	defer queue.Close()

	account := service.New(oidc,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithTracer(tracer.NewOTel()),
		service.WithCookie(cfg.CookieName, cfg.CookieDomain),
	)
	stateMgr := state.New(queue, state.WithLogger(log))
	stateMgr.SubscribeLegacy(func(action models.LegacyAction) {
		log.Info("legacy broadcast", "action", string(action))
	})

	runtime := webruntime.NewMemoryRuntime()
	go autoCloseTabs(runtime, log)

	b := bridge.New(account, stateMgr, runtime, queue, flow.Config{
		LoginURLs:      cfg.LoginURLs,
		LogoutURLs:     cfg.LogoutURLs,
		SessionTimeout: cfg.SessionTimeout,
		LogoutFallback: cfg.LogoutFallback,
	}, bridge.WithLogger(log), bridge.WithMetrics(m))

	d := detector.New(b, cfg.RootURL, detector.WithLogger(log))

	ctx := context.Background()
	if restored, err := account.RestoreSession(ctx); err != nil {
		log.Warn("session restore failed", "error", err)
	} else if restored {
		// Replay the restored session through the state machine so both
		// observer channels see the startup state.
		stateMgr.BeginAuthentication()
		stateMgr.CompleteAuthentication(account.CurrentUser())
		log.Info("session restored", "subject", account.CurrentUser().Profile.Subject)
	}

	loginDone := make(chan bool, 1)
	b.Login(ctx).
		WithDelayedCompletion(cfg.DelayedCompletion).
		OnNativeAuthCompleted(func() {
			log.Info("native auth completed, web handoff in progress")
		}).
		OnError(func(err error) {
			log.Error("login flow failed", "error", err)
		}).
		OnAuthFlowCompleted(func(success bool) {
			loginDone <- success
		})

	if success := <-loginDone; !success {
		log.Error("demo aborted, login did not complete")
		os.Exit(1)
	}
	log.Info("login cycle done", "logged_in", b.IsLoggedIn())

	// The web page navigating to a sign-out URL triggers native logout.
	kind := d.Observe(ctx, cfg.RootURL+"/logout")
	log.Info("navigation observed", "kind", kind.String())

	deadline := time.Now().Add(cfg.LogoutFallback + 5*time.Second)
	for stateMgr.Current().Phase != models.PhaseLoggedOut && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	log.Info("demo finished", "final_state", stateMgr.Current().Phase.String())
}

// serveMetrics exposes the Prometheus registry.
func serveMetrics(addr string, log *slog.Logger) {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("metrics server error", "error", err)
	}
}

// autoCloseTabs plays the part of the web pages: every invisible tab
// finishes its work and closes shortly after opening.
func autoCloseTabs(runtime *webruntime.MemoryRuntime, log *slog.Logger) {
	seen := make(map[string]bool)
	for {
		for _, tab := range runtime.Tabs() {
			if !seen[tab.ID()] && !tab.Closed() {
				seen[tab.ID()] = true
				go func(t *webruntime.MemoryTab) {
					time.Sleep(300 * time.Millisecond)
					log.Info("web page finished, closing tab", "tab_id", t.ID())
					t.Close()
				}(tab)
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// headlessAuthorizer completes the interactive step without a browser
// by asking the lab IdP's authorize endpoint directly for a code.
type headlessAuthorizer struct{}

func (a *headlessAuthorizer) Authorize(ctx context.Context, authURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("authorize endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Code, nil
}
