package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": 1,
		"exp":      exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func callProtected(authorization string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	AdminAuthMiddleware(next).ServeHTTP(rr, req)
	return rr
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	valid := signToken(t, "test-secret", time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusOK, callProtected("Bearer "+valid).Code)

	assert.Equal(t, http.StatusUnauthorized, callProtected("").Code)
	assert.Equal(t, http.StatusUnauthorized, callProtected("Bearer not-a-token").Code)

	expired := signToken(t, "test-secret", time.Now().Add(-time.Hour))
	assert.Equal(t, http.StatusUnauthorized, callProtected("Bearer "+expired).Code)

	wrongKey := signToken(t, "other-secret", time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusUnauthorized, callProtected("Bearer "+wrongKey).Code)
}
