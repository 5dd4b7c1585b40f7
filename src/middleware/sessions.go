package middleware

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "session"

var (
	ErrMissingToken = errors.New("session token is required")
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevokedToken = errors.New("session has been logged out")
)

// SessionClaims identify the collector a request acts for.
type SessionClaims struct {
	CollectorID int    `json:"id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies signed per-client session tokens.
type SessionManager struct {
	secret  []byte
	ttl     time.Duration
	revoked *RevocationList
	now     func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: NewRevocationList(),
		now:     time.Now,
	}
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the collector that expires after the configured TTL.
func (m *SessionManager) Issue(collectorID int, email string) (string, error) {
	now := m.now()
	claims := SessionClaims{
		CollectorID: collectorID,
		Email:       email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature, expiry and revocation of a token.
func (m *SessionManager) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	if m.revoked.Contains(claims.ID, m.now()) {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// FromRequest resolves the session from the Authorization header, falling back to the session cookie.
func (m *SessionManager) FromRequest(ctx *gin.Context) (*SessionClaims, error) {
	authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, ErrInvalidToken
		}
		return m.Parse(parts[1])
	}

	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return nil, ErrMissingToken
	}
	return m.Parse(cookie)
}

// Revoke invalidates the token until it would have expired anyway.
func (m *SessionManager) Revoke(claims *SessionClaims) {
	until := m.now().Add(m.ttl)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	m.revoked.Add(claims.ID, until)
}

// StartCleanup drops expired revocations every interval until ctx is done.
func (m *SessionManager) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.revoked.Prune(m.now())
			}
		}
	}()
}

// RevocationList remembers logged out token ids until their expiry.
type RevocationList struct {
	entries map[string]time.Time
	mutex   sync.RWMutex
}

func NewRevocationList() *RevocationList {
	return &RevocationList{entries: make(map[string]time.Time)}
}

func (r *RevocationList) Add(id string, until time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries[id] = until
}

func (r *RevocationList) Contains(id string, now time.Time) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	until, exists := r.entries[id]
	return exists && now.Before(until)
}

// Prune removes expired entries and reports how many were dropped.
func (r *RevocationList) Prune(now time.Time) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	removed := 0
	for id, until := range r.entries {
		if !now.Before(until) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *RevocationList) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}
