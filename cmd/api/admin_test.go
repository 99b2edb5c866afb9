package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLogin(t *testing.T) {
	app := NewTestApplication(t, nil)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	app.cfg.Admin.PasswordHash = string(hash)

	t.Run("valid password", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(
			http.MethodPost, "/api/admin/login",
			strings.NewReader(`{"password": "s3cret"}`),
		)
		app.adminLogin(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var payload struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.NotEmpty(t, payload.Data.Token)

		// the issued token must pass the guard it is meant for
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		guarded := httptest.NewRecorder()
		guardedReq := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
		guardedReq.Header.Set("Authorization", "Bearer "+payload.Data.Token)
		app.RequireAdmin(next).ServeHTTP(guarded, guardedReq)
		assert.Equal(t, http.StatusOK, guarded.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(
			http.MethodPost, "/api/admin/login",
			strings.NewReader(`{"password": "nope"}`),
		)
		app.adminLogin(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		app.adminLogin(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
