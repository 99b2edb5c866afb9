package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signAdminToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRequireAdmin(t *testing.T) {
	app := NewTestApplication(t, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + signAdminToken(t, app.cfg.Admin.JWTSecret, time.Hour), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signAdminToken(t, "other-secret", time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signAdminToken(t, app.cfg.Admin.JWTSecret, -time.Hour), http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
			if tc.header != "" {
				request.Header.Set("Authorization", tc.header)
			}
			app.RequireAdmin(next).ServeHTTP(recorder, request)
			assert.Equal(t, tc.want, recorder.Code)
		})
	}
}
