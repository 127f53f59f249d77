package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/respicy/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubValidator struct {
	claims *types.TokenClaims
}

func (v *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if token != "good-token" {
		return nil, errors.New("invalid token")
	}
	return v.claims, nil
}

func newAuthedRouter(validator TokenValidator) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(validator), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", AuthMiddleware(validator), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	r := newAuthedRouter(&stubValidator{claims: &types.TokenClaims{UserID: userID}})

	// No header.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong scheme.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Rejected token.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token sets the acting user.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAdminRequired(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	// Plain user is rejected.
	r := newAuthedRouter(&stubValidator{claims: &types.TokenClaims{UserID: uuid.New()}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Admin flag on the token grants access.
	r = newAuthedRouter(&stubValidator{claims: &types.TokenClaims{UserID: uuid.New(), IsAdmin: true}})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterWithoutRedisIsNoOp(t *testing.T) {
	r := gin.New()
	r.POST("/login", NewLoginRateLimiter(nil).ByClientIP(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
