package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	sessions := NewSessionManager("secret", time.Hour)

	token, err := sessions.Issue(3, "ana@example.com")
	require.NoError(t, err)

	claims, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.CollectorID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensAreUniquePerLogin(t *testing.T) {
	sessions := NewSessionManager("secret", time.Hour)

	first, err := sessions.Issue(3, "ana@example.com")
	require.NoError(t, err)
	second, err := sessions.Issue(3, "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	sessions := NewSessionManager("secret", time.Hour)
	issuedAt := time.Now()
	sessions.now = func() time.Time { return issuedAt }

	token, err := sessions.Issue(3, "ana@example.com")
	require.NoError(t, err)

	sessions.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = sessions.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	token, err := NewSessionManager("other-secret", time.Hour).Issue(3, "ana@example.com")
	require.NoError(t, err)

	_, err = NewSessionManager("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnexpectedAlgorithm(t *testing.T) {
	claims := SessionClaims{
		CollectorID: 3,
		Email:       "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewSessionManager("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	sessions := NewSessionManager("secret", time.Hour)
	token, err := sessions.Issue(3, "ana@example.com")
	require.NoError(t, err)
	claims, err := sessions.Parse(token)
	require.NoError(t, err)

	sessions.Revoke(claims)

	_, err = sessions.Parse(token)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestRevocationListPrune(t *testing.T) {
	list := NewRevocationList()
	now := time.Now()
	list.Add("expired", now.Add(-time.Minute))
	list.Add("active", now.Add(time.Minute))

	assert.False(t, list.Contains("expired", now))
	assert.True(t, list.Contains("active", now))
	assert.Equal(t, 1, list.Prune(now))
	assert.Equal(t, 1, list.Len())
}

func TestFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := NewSessionManager("secret", time.Hour)
	token, err := sessions.Issue(3, "ana@example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		wantErr error
	}{
		{name: "bearer header", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }},
		{name: "cookie", prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token}) }},
		{name: "missing", prepare: func(r *http.Request) {}, wantErr: ErrMissingToken},
		{name: "malformed header", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) }, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(ctx.Request)

			claims, err := sessions.FromRequest(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana@example.com", claims.Email)
		})
	}
}
