package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginSuccess(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "admin",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["loginTime"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
}

func TestAdminLoginMissingFields(t *testing.T) {
	router := newTestRouter(t)

	for _, payload := range []map[string]any{
		{"username": "admin"},
		{"password": "s3cret"},
		{},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	for _, payload := range []map[string]any{
		{"username": "admin", "password": "wrong"},
		{"username": "nobody", "password": "s3cret"},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", payload)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Invalid username or password", body["error"],
			"every non-match gets the same generic message")
	}
}
