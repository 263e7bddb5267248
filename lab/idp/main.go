// Command idp is a toy identity provider for exercising the bridge
// demo end to end: authorization-code with PKCE, refresh grants and the
// session-transfer exchange, all against in-memory state. Not a real
// IdP; nothing here is hardened.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTransferTokenType = "urn:ietf:params:oauth:token-type:session_transfer_token"

type authCode struct {
	clientID  string
	challenge string
	issuedAt  time.Time
}

type server struct {
	signingKey []byte

	mu      sync.Mutex
	codes   map[string]authCode
	refresh map[string]string // refresh token -> subject
}

func main() {
	port := getenv("PORT", "8080")
	s := &server{
		signingKey: []byte(getenv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production")),
		codes:      make(map[string]authCode),
		refresh:    make(map[string]string),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/authorize", s.handleAuthorize)
	r.Post("/oauth/token", s.handleToken)
	r.Get("/v2/logout", s.handleLogout)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("toy idp listening on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// handleAuthorize skips the login page entirely and hands the code back
// as JSON so headless clients can complete the flow.
func (s *server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clientID := q.Get("client_id")
	if clientID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	code := randomToken()
	s.mu.Lock()
	s.codes[code] = authCode{
		clientID:  clientID,
		challenge: q.Get("code_challenge"),
		issuedAt:  time.Now(),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{
		"code":  code,
		"state": q.Get("state"),
	})
}

func (s *server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	switch r.PostFormValue("grant_type") {
	case "authorization_code":
		s.handleCodeGrant(w, r)
	case "refresh_token":
		s.handleRefreshGrant(w, r)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
	}
}

func (s *server) handleCodeGrant(w http.ResponseWriter, r *http.Request) {
	code := r.PostFormValue("code")

	s.mu.Lock()
	granted, ok := s.codes[code]
	delete(s.codes, code)
	s.mu.Unlock()

	if !ok || time.Since(granted.issuedAt) > 5*time.Minute {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
		return
	}
	if !verifyPKCE(granted.challenge, r.PostFormValue("code_verifier")) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant", "error_description": "pkce verification failed"})
		return
	}

	subject := "auth0|demo-user"
	refreshToken := randomToken()
	s.mu.Lock()
	s.refresh[refreshToken] = subject
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  randomToken(),
		"id_token":      s.mintIDToken(subject, granted.clientID),
		"refresh_token": refreshToken,
		"token_type":    "Bearer",
		"expires_in":    3600,
		"scope":         "openid profile email offline_access",
	})
}

func (s *server) handleRefreshGrant(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.PostFormValue("refresh_token")

	s.mu.Lock()
	subject, ok := s.refresh[refreshToken]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
		return
	}

	if r.PostFormValue("requested_token_type") == sessionTransferTokenType {
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":      randomToken(),
			"issued_token_type": sessionTransferTokenType,
			"token_type":        "N_A",
			"expires_in":        60,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": randomToken(),
		"id_token":     s.mintIDToken(subject, r.PostFormValue("client_id")),
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	log.Printf("session cleared for client %s", r.URL.Query().Get("client_id"))
	w.WriteHeader(http.StatusOK)
}

func (s *server) mintIDToken(subject, audience string) string {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   "toy-idp",
		"sub":   subject,
		"aud":   audience,
		"email": "demo@example.org",
		"name":  "Demo User",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Printf("could not sign id token: %v", err)
		return ""
	}
	return signed
}

func verifyPKCE(challenge, verifier string) bool {
	if challenge == "" {
		// No challenge registered; accept for plain lab clients.
		return true
	}
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:]) == challenge
}

func randomToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("entropy unavailable: %v", err)
	}
	return hex.EncodeToString(buf)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
