// internal/auth/auth.go
package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maheshk/campusconnect-backend/internal/config"
)

const sessionTTL = 12 * time.Hour

// Session represents one authenticated admin session.
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager verifies the admin credential server-side and tracks issued
// bearer tokens in memory. Tokens expire; there is no refresh.
type Manager struct {
	password  string
	sessions  map[string]*Session
	sessionMu sync.RWMutex
}

// NewManager creates a new authentication manager.
func NewManager(cfg config.AdminConfig) *Manager {
	return &Manager{
		password: cfg.Password,
		sessions: make(map[string]*Session),
	}
}

// Login checks the supplied password and issues a session token.
func (m *Manager) Login(password string) (*Session, error) {
	if m.password == "" {
		return nil, fmt.Errorf("admin access is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return nil, fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	session := &Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	m.sessionMu.Lock()
	m.sessions[session.Token] = session
	m.sessionMu.Unlock()

	return session, nil
}

// Validate reports whether the token belongs to a live session. Expired
// sessions are pruned on sight.
func (m *Manager) Validate(token string) bool {
	m.sessionMu.RLock()
	session, ok := m.sessions[token]
	m.sessionMu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(session.ExpiresAt) {
		m.sessionMu.Lock()
		delete(m.sessions, token)
		m.sessionMu.Unlock()
		return false
	}
	return true
}

// RequireAuth guards admin routes with a bearer-token check.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header || !m.Validate(token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
